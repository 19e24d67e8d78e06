package zstr

import (
	"fmt"
	"strings"
)

func TruncatedCharsAtEnd(str string, chars int) (s string) {
	l := len(str)
	if l <= chars {
		return ""
	}
	return str[:l-chars]
}

// Concatinates parts, adding divider if prev or current added is not empty
// Doesn't add divider if prev ends in divider og next part begins with it
func Concat(divider string, parts ...any) string {
	var str string
	for _, p := range parts {
		s := fmt.Sprintf("%v", p)
		if s != "" {
			if str == "" {
				str = s
			} else {
				prevHas := strings.HasSuffix(str, divider)
				currentHas := strings.HasPrefix(s, divider)
				if !prevHas && !currentHas {
					str += divider
				}
				if prevHas && currentHas {
					str = TruncatedCharsAtEnd(str, 1)
				}
				str += s
			}
		}
	}
	return str
}

func Spaced(parts ...any) string {
	return Concat(" ", parts...)
}

func SprintSpaced(items ...any) string {
	return strings.TrimRight(fmt.Sprintln(items...), "\n")
}

func HasSuffix(str, suffix string, rest *string) bool {
	if strings.HasSuffix(str, suffix) {
		*rest = str[:len(str)-len(suffix)]
		return true
	}
	return false
}

// SplitN splits str by sep into the parts given, returning false if there are fewer
// pieces than parts. The last part gets the rest of str.
func SplitN(str, sep string, parts ...*string) bool {
	n := len(parts)
	split := strings.SplitN(str, sep, n)
	if len(split) != n {
		return false
	}
	for i, s := range split {
		*parts[i] = s
	}
	return true
}

// IsBlank is true for an empty or whitespace-only string.
func IsBlank(str string) bool {
	return strings.TrimSpace(str) == ""
}
