package jar

import "errors"

// MaxExpiry is the expiration assigned to cookies that carry none:
// the largest 32-bit signed epoch timestamp (2038-01-19).
const MaxExpiry int64 = 2147483647

var (
	// ErrNotFound indicates the input file does not exist or cannot be read.
	ErrNotFound = errors.New("cookie file not found")

	// ErrParse indicates the input is not valid JSON, or is valid JSON that
	// is not an array of cookie objects.
	ErrParse = errors.New("cookie file is not a JSON cookie export")

	// ErrEmptyInput indicates the input parsed cleanly but contains no cookies.
	ErrEmptyInput = errors.New("no cookies found in input")
)

// CookieRecord is one element of a browser cookie export.
//
// All fields are optional in the export. Path and Expiration are pointers so
// that an absent key can be told apart from an explicit empty/zero value:
// a missing path defaults to "/", a missing expiration to MaxExpiry.
type CookieRecord struct {
	Domain     string   `json:"domain"`
	Path       *string  `json:"path"`
	Secure     bool     `json:"secure"`
	Expiration *float64 `json:"expirationDate"`
	Name       string   `json:"name"`
	Value      string   `json:"value"`
}

// Result summarizes a completed conversion.
type Result struct {
	// Count is the number of cookies written to the output file.
	Count int

	// Dropped is the number of duplicate records removed when de-duplication
	// was requested. Always zero otherwise.
	Dropped int

	// InputSize and InputHash describe the raw input bytes, for logging.
	InputSize int64
	InputHash uint64
}
