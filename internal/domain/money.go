package domain

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Fees are carried as integer cents so totals stay exact and the
// rendered document is reproducible.

// ParseCents parses a decimal dollar amount such as "1200", "1200.5"
// or "1,200.00" into cents. A leading "$" and thousands separators
// are tolerated. At most two decimal places are accepted.
func ParseCents(s string) (int64, error) {
	in := strings.TrimSpace(s)
	in = strings.TrimPrefix(in, "$")
	in = strings.ReplaceAll(in, ",", "")
	if in == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(in, "-") {
		neg = true
		in = in[1:]
	}

	whole, frac, hasFrac := strings.Cut(in, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	var cents int64
	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents = cents*10 + int64(r-'0')
	}
	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatUSD renders cents as a dollar amount with thousands grouping,
// e.g. 150000 -> "$1,500.00".
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(cents/100), cents%100)
}
