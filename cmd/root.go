package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gorilla-tactics/cookieconv/jar"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	outputPath string
	dedupe     bool
	verbose    bool
	Logger     *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "cookieconv",
		Short: "Convert browser cookie exports to the Netscape cookie-file format",
		Long: `Cookieconv converts a JSON cookie export, as produced by cookie-export
browser extensions, into the plain-text Netscape cookie-file format that
curl, wget, yt-dlp and similar HTTP tooling consume.`,
		Args: cobra.NoArgs,
		Example: `  cookieconv
  cookieconv -i export.json -o cookies.txt
  cookieconv --dedupe -v`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: runConvert,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "cookies.txt", "Netscape cookie file to write")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "cookies.json", "JSON cookie export to read")
	rootCmd.Flags().BoolVar(&dedupe, "dedupe", false, "Drop duplicate (name, domain, path) cookies, keeping the first")

	// will be reconfigured in PersistentPreRun based on flags
	setupLogger()
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := ValidateInputFile(inputPath); err != nil {
		return err
	}

	conv := &jar.Converter{Dedupe: dedupe, Logger: GetLogger()}
	result, err := conv.Convert(inputPath, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Converted %d cookies from JSON to Netscape format.\n", result.Count)
	if result.Dropped > 0 {
		fmt.Printf("Dropped %d duplicate cookies.\n", result.Dropped)
	}
	fmt.Printf("Saved to %s.\n", outputPath)
	fmt.Println("Conversion complete.")
	return nil
}

// setupLogger configures the global slog logger based on the verbose flag
func setupLogger() {
	var opts *slog.HandlerOptions

	if verbose {
		opts = &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}
	} else {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	if verbose {
		Logger.Debug("verbose logging enabled",
			"level", slog.LevelDebug.String(),
			"pid", os.Getpid())
	}
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	if Logger == nil {
		setupLogger()
	}
	return Logger
}

// ValidateInputFile checks that the given input file exists and is a regular
// file. Failures wrap jar.ErrNotFound so callers share one taxonomy.
func ValidateInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: input path is required", jar.ErrNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", jar.ErrNotFound, path)
		}
		return fmt.Errorf("error accessing %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory, not a file", jar.ErrNotFound, path)
	}

	return nil
}
