package zwords

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/torlangballe/zstats/zstr"
)

// DefaultLanguage is used by functions given langCode == ""
var DefaultLanguage = "en"

// NiceFloat converts a float to string, with only significant amount of post-comma digits.
// It is rounded to significant digits and trailing zeros are removed.
// significant == 0 keeps up to 6 digits, significant < 0 gives the shortest exact representation.
func NiceFloat(f float64, significant int) string {
	switch {
	case significant < 0:
		return strconv.FormatFloat(f, 'f', -1, 64)
	case significant == 0:
		return humanize.Ftoa(f)
	case significant <= 6:
		pow := math.Pow10(significant)
		f = math.Round(f*pow) / pow
		if f == 0 {
			f = 0 // no "-0"
		}
		return humanize.FtoaWithDigits(f, significant)
	}
	s := strconv.FormatFloat(f, 'f', significant, 64)
	if strings.ContainsRune(s, '.') {
		for zstr.HasSuffix(s, "0", &s) {
		}
		zstr.HasSuffix(s, ".", &s)
	}
	return s
}

// PluralizeWord returns word if count == 1 or plural if != "".
// Otherwise it uses langauge-specific rules to pluralize.
// langCode == "" uses DefaultLanguage
func PluralizeWord(word string, count float64, langCode, plural string) string {
	if langCode == "" {
		langCode = DefaultLanguage
	}
	if int64(count) == 1 {
		return word
	}
	if plural != "" {
		return plural
	}
	switch langCode {
	case "no", "da", "sv":
		return word + "er"
	}
	if strings.HasSuffix(word, "s") {
		return word + "es"
	}
	return word + "s"
}

// Pluralize is a convenience function to pluralize words with int, default langage and only rule-based pluralization
func Pluralize(word string, count int) string {
	return strconv.Itoa(count) + " " + PluralizeWord(word, float64(count), "", "")
}
