// Package cipher implements a Caesar cipher over ASCII letters.
package cipher

const alphabetSize = 26

// Normalize maps shift into [0, 26) using a true modulo, so negative
// shifts wrap: Normalize(-3) == 23.
func Normalize(shift int) int {
	shift %= alphabetSize
	if shift < 0 {
		shift += alphabetSize
	}
	return shift
}

// Encode shifts every ASCII letter in text forward by shift positions,
// wrapping within its own case. All other runes pass through unchanged.
func Encode(text string, shift int) string {
	n := rune(Normalize(shift))
	if n == 0 {
		return text
	}
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			runes[i] = 'a' + (r-'a'+n)%alphabetSize
		case r >= 'A' && r <= 'Z':
			runes[i] = 'A' + (r-'A'+n)%alphabetSize
		}
	}
	return string(runes)
}

// Decode reverses Encode with the same shift.
func Decode(text string, shift int) string {
	return Encode(text, -shift)
}
