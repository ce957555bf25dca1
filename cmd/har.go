package cmd

import (
	"fmt"

	"github.com/gorilla-tactics/cookieconv/jar"
	"github.com/spf13/cobra"
)

var harCmd = &cobra.Command{
	Use:   "har <har-file>",
	Short: "Extract request cookies from a HAR capture",
	Long: `Extract the cookies a browser attached to requests in a HAR (HTTP Archive)
capture and write them as a Netscape cookie file.

HAR request cookies carry no attributes, so the cookie domain derives from
the request URL host and the secure flag from an https scheme. Duplicates
across entries collapse to the first occurrence.`,
	Args: cobra.ExactArgs(1),
	Example: `  cookieconv har recording.har
  cookieconv har recording.har -o cookies.txt`,
	RunE: runHar,
}

func init() {
	rootCmd.AddCommand(harCmd)
}

func runHar(cmd *cobra.Command, args []string) error {
	harFile := args[0]

	if err := ValidateInputFile(harFile); err != nil {
		return fmt.Errorf("invalid HAR file: %w", err)
	}

	conv := &jar.Converter{Logger: GetLogger()}
	result, err := conv.ConvertHAR(harFile, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d cookies from %s.\n", result.Count, harFile)
	fmt.Printf("Saved to %s.\n", outputPath)
	return nil
}
