package jar

import (
	"strconv"
	"strings"
)

// Header is the fixed preamble of a Netscape cookie file: the magic comment
// line plus one blank line.
const Header = "# Netscape HTTP Cookie File\n\n"

// FormatLine renders one cookie as a 7-field tab-separated Netscape line,
// without a trailing newline.
//
// Field order: domain, include-subdomains flag, path, secure flag, expiry,
// name, value. The include-subdomains flag is TRUE exactly when the domain
// starts with a dot. Fractional expirations truncate toward zero.
func FormatLine(c CookieRecord) string {
	path := "/"
	if c.Path != nil {
		path = *c.Path
	}

	expires := MaxExpiry
	if c.Expiration != nil {
		expires = int64(*c.Expiration)
	}

	return strings.Join([]string{
		c.Domain,
		flag(strings.HasPrefix(c.Domain, ".")),
		path,
		flag(c.Secure),
		strconv.FormatInt(expires, 10),
		c.Name,
		c.Value,
	}, "\t")
}

func flag(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
