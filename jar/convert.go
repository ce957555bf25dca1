package jar

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Converter turns a JSON cookie export into a Netscape cookie file.
// The zero value is ready to use.
type Converter struct {
	// Dedupe drops repeated (name, domain, path) records, keeping the first.
	Dedupe bool

	// Logger receives debug detail about the run. Defaults to slog.Default().
	Logger *slog.Logger
}

// Convert reads the JSON cookie export at inputPath and writes the Netscape
// rendition to outputPath, overwriting any existing file. Records are written
// in input order.
//
// Failures are terminal and wrap one of ErrNotFound, ErrParse or
// ErrEmptyInput. The empty-input check runs before the output file is opened,
// so a failed run never leaves a header-only file behind.
func (c *Converter) Convert(inputPath, outputPath string) (*Result, error) {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, inputPath, err)
	}

	records, err := parseRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, inputPath)
	}

	res := &Result{
		InputSize: int64(len(raw)),
		InputHash: xxhash.Sum64(raw),
	}

	if c.Dedupe {
		before := len(records)
		records = dedupeRecords(records)
		res.Dropped = before - len(records)
	}

	c.logger().Debug("cookie export loaded",
		"records", len(records),
		"dropped", res.Dropped,
		"input_size", res.InputSize,
		"input_hash", fmt.Sprintf("%016x", res.InputHash))

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

	res.Count = len(records)
	return res, nil
}

// WriteNetscape writes the Netscape header plus one line per record to w.
func WriteNetscape(w io.Writer, records []CookieRecord) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := bw.WriteString(FormatLine(r) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// parseRecords accepts the bare `[...]` export form as well as the
// `{"cookies": [...]}` wrapper some export extensions produce. Every element
// must be a JSON object; null and scalar elements are rejected rather than
// silently becoming blank cookies.
func parseRecords(raw []byte) ([]CookieRecord, error) {
	raw = bytes.TrimSpace(raw)

	var elements []json.RawMessage
	arrErr := json.Unmarshal(raw, &elements)
	if arrErr != nil {
		var wrapper struct {
			Cookies []json.RawMessage `json:"cookies"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil || wrapper.Cookies == nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, arrErr)
		}
		elements = wrapper.Cookies
	}

	records := make([]CookieRecord, 0, len(elements))
	for i, el := range elements {
		el = bytes.TrimSpace(el)
		if len(el) == 0 || el[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not a cookie object", ErrParse, i)
		}
		var r CookieRecord
		if err := json.Unmarshal(el, &r); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrParse, i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
