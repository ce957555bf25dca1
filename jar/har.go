package jar

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/pb33f/harhar"
)

// harDocument is the slice of a HAR file this tool cares about.
type harDocument struct {
	Log struct {
		Entries []harhar.Entry `json:"entries"`
	} `json:"log"`
}

// LoadHAR extracts the cookies a browser attached to requests in a HAR
// capture, as CookieRecords ready for Netscape output.
//
// HAR request cookies carry no attributes, so the domain derives from the
// request URL host and the secure flag from an https scheme; path and expiry
// take the usual defaults. The same cookie appears on every request it was
// sent with, so duplicates collapse to the first occurrence.
func LoadHAR(harPath string) ([]CookieRecord, error) {
	raw, err := os.ReadFile(harPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, harPath, err)
	}

	var doc harDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("reading %s: %w: %v", harPath, ErrParse, err)
	}

	var records []CookieRecord
	for _, entry := range doc.Log.Entries {
		host := ""
		secure := false
		if u, err := url.Parse(entry.Request.URL); err == nil {
			host = u.Hostname()
			secure = u.Scheme == "https"
		}
		for _, c := range entry.Request.Cookies {
			if c.Name == "" {
				continue
			}
			records = append(records, CookieRecord{
				Domain: host,
				Secure: secure,
				Name:   c.Name,
				Value:  c.Value,
			})
		}
	}

	return dedupeRecords(records), nil
}

// ConvertHAR is Convert for HAR captures: extract, then write the Netscape
// file. Captures without any request cookies fail with ErrEmptyInput before
// the output file is opened.
func (c *Converter) ConvertHAR(harPath, outputPath string) (*Result, error) {
	records, err := LoadHAR(harPath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, harPath)
	}

	c.logger().Debug("har cookies extracted", "records", len(records))

	file, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteNetscape(file, records); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return &Result{Count: len(records)}, nil
}
