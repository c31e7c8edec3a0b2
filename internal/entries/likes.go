package entries

import "math"

// ExtractLikes returns the first maximal run of decimal digits in s as a
// non-negative integer. "Liked by 5 people" → 5; "12 and 34" → 12; no
// digits (or empty field) → 0. Runs too long for int64 saturate at
// math.MaxInt64 rather than wrapping; parsing never fails.
func ExtractLikes(s string) int64 {
	var (
		n     int64
		inRun bool
		maxed bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			if inRun {
				break
			}
			continue
		}
		inRun = true
		if maxed {
			continue
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			maxed = true
			continue
		}
		n = n*10 + d
	}
	return n
}
