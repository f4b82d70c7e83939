package format

import (
	"fmt"
	"strconv"
)

// FmtMillions formats a USD-millions amount as "$558.0M".
func FmtMillions(v float64) string {
	return fmt.Sprintf("$%.1fM", v)
}

// FmtRatio formats a coverage count as "8/10".
func FmtRatio(n, total int) string {
	return fmt.Sprintf("%d/%d", n, total)
}

// FmtPercent formats n of total as "80.0%"; an empty total is "0.0%".
func FmtPercent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

// FmtThousands groups digits, e.g. 17400 -> "17,400".
func FmtThousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
