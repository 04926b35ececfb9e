package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR formats an amount as a string like "₹1,23,500" using the
// Indian digit grouping (last three digits, then pairs).
func FormatINR(amount float64) string {
	neg := amount < 0
	whole := int64(math.Round(math.Abs(amount)))

	s := strconv.FormatInt(whole, 10)
	if len(s) <= 3 {
		if neg {
			return "-₹" + s
		}
		return "₹" + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2 + 4)
	if neg {
		b.WriteString("-₹")
	} else {
		b.WriteString("₹")
	}

	// Head: everything before the final three digits, grouped in pairs
	// from the right.
	head := s[:len(s)-3]
	rem := len(head) % 2
	if rem == 1 {
		b.WriteString(head[:1])
		head = head[1:]
		if len(head) > 0 {
			b.WriteByte(',')
		}
	}
	for i := 0; i < len(head); i += 2 {
		b.WriteString(head[i : i+2])
		b.WriteByte(',')
	}
	b.WriteString(s[len(s)-3:])

	return b.String()
}
