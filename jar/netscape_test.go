package jar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name   string
		record CookieRecord
		want   string
	}{
		{
			name: "dot domain includes subdomains",
			record: CookieRecord{
				Domain: ".example.com",
				Name:   "sid",
				Value:  "abc123",
				Secure: true,
			},
			want: ".example.com\tTRUE\t/\tTRUE\t2147483647\tsid\tabc123",
		},
		{
			name: "bare domain excludes subdomains",
			record: CookieRecord{
				Domain: "example.com",
				Name:   "sid",
				Value:  "abc123",
			},
			want: "example.com\tFALSE\t/\tFALSE\t2147483647\tsid\tabc123",
		},
		{
			name:   "all fields missing",
			record: CookieRecord{},
			want:   "\tFALSE\t/\tFALSE\t2147483647\t\t",
		},
		{
			name: "fractional expiration truncates toward zero",
			record: CookieRecord{
				Domain:     "example.com",
				Expiration: floatPtr(1700000000.7),
				Name:       "t",
				Value:      "v",
			},
			want: "example.com\tFALSE\t/\tFALSE\t1700000000\tt\tv",
		},
		{
			name: "explicit path preserved",
			record: CookieRecord{
				Domain: ".example.com",
				Path:   strPtr("/account"),
				Name:   "pref",
				Value:  "dark",
			},
			want: ".example.com\tTRUE\t/account\tFALSE\t2147483647\tpref\tdark",
		},
		{
			name: "explicit empty path is not defaulted",
			record: CookieRecord{
				Domain: "example.com",
				Path:   strPtr(""),
				Name:   "n",
				Value:  "v",
			},
			want: "example.com\tFALSE\t\tFALSE\t2147483647\tn\tv",
		},
		{
			name: "zero expiration is kept",
			record: CookieRecord{
				Domain:     "example.com",
				Expiration: floatPtr(0),
				Name:       "session",
				Value:      "x",
			},
			want: "example.com\tFALSE\t/\tFALSE\t0\tsession\tx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLine(tt.record))
		})
	}
}

func TestWriteNetscape(t *testing.T) {
	records := []CookieRecord{
		{Domain: ".example.com", Name: "a", Value: "1"},
		{Domain: "example.org", Name: "b", Value: "2", Secure: true},
	}

	var buf bytes.Buffer
	err := WriteNetscape(&buf, records)
	require.NoError(t, err)

	want := "# Netscape HTTP Cookie File\n\n" +
		".example.com\tTRUE\t/\tFALSE\t2147483647\ta\t1\n" +
		"example.org\tFALSE\t/\tTRUE\t2147483647\tb\t2\n"
	assert.Equal(t, want, buf.String())
}
