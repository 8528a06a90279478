package format

import "strconv"

// Ordinal returns n followed by its English ordinal suffix: 1st, 2nd, 3rd,
// 4th, 11th, 12th, 13th, 21st, 102nd. Negative values keep their sign.
func Ordinal(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return s + "th"
	}
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	default:
		return s + "th"
	}
}
