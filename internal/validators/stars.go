package validators

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseStars reads the leading integer of raw the way clients have always
// been answered: leading whitespace is skipped, an optional sign is read,
// then decimal digits (or hex digits after a 0x prefix) up to the first
// other character. "4.5" is 4, "5abc" is 5 and " 5" is 5.
//
// It returns [ErrStarsNotInteger] when no digit follows the optional sign or
// the value does not fit an int.
func ParseStars(raw string) (int, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, ErrStarsNotInteger
	}

	stars, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		return 0, ErrStarsNotInteger
	}
	if negative {
		stars = -stars
	}

	return int(stars), nil
}

func isDigit(c byte, base int) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case base == 16:
		return ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
	}
	return false
}
