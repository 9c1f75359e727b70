// Package slownie spells integers out in Polish words.
//
//	slownie.Convert(123)   // "sto dwadzieścia trzy"
//	slownie.Convert(-2000) // "minus dwa tysiące"
//
// The package holds no mutable state and every function is safe for concurrent use.
package slownie

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is the grammar this package produces.
var Language = language.Polish

// Convert returns the Polish words for number joined with single spaces.
func Convert(number int64) string {
	return strings.Join(Words(number), " ")
}

// Words returns the fragments Convert joins, in output order. The result is
// never empty and never contains an empty fragment.
func Words(number int64) []string {
	if number == 0 {
		return []string{zeroWord}
	}

	parts := make([]string, 0, 16)
	magnitude := uint64(number)
	if number < 0 {
		parts = append(parts, minusWord)
		// -(n+1) cannot overflow, so MinInt64 keeps its full magnitude.
		magnitude = uint64(-(number + 1)) + 1
	}

	for _, s := range scales {
		count := magnitude / s.divisor
		if count == 0 {
			continue
		}
		if s.forms == nil {
			parts = appendUnderThousand(parts, count)
		} else {
			// "tysiąc", not "jeden tysiąc".
			if count != 1 {
				parts = appendUnderThousand(parts, count)
			}
			parts = append(parts, s.forms[FormFor(count)])
		}
		magnitude %= s.divisor
	}

	return compact(parts)
}

// appendUnderThousand spells 0 < c < 1000.
func appendUnderThousand(parts []string, c uint64) []string {
	if h := c / 100; h > 0 {
		parts = append(parts, hundreds[h])
		c %= 100
	}
	// 10-19 skip the tens step and read their irregular form from units.
	if t := c / 10; t > 1 {
		parts = append(parts, tens[t])
		c %= 10
	}
	if c > 0 {
		parts = append(parts, units[c])
	}
	return parts
}

func compact(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
