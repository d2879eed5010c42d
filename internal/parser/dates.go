package parser

import (
	"regexp"
	"strings"
)

// NormalizedDate is a canonical DD/MM/YYYY date. Exact is false whenever
// a component could not be read and a default was substituted; callers
// surface that instead of silently trusting the value.
type NormalizedDate struct {
	Value string
	Exact bool
}

var (
	dateSeparators = regexp.MustCompile(`[./-]`)
	dayPattern     = regexp.MustCompile(`\d{1,2}`)
	monthPattern   = regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`)
	yearPattern    = regexp.MustCompile(`(\d{2,4})$`)
)

// Months are matched on their first three letters, case-insensitively.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04", "may": "05", "jun": "06",
	"jul": "07", "aug": "08", "sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// normalizeNumericDate converts a D/M/Y fragment with any of "/", "." or
// "-" as separators into DD/MM/YYYY. Two-digit years map to 20YY; years
// before 2000 or after 2099 are not representable. A fragment that does
// not split into exactly three parts is passed through unchanged with
// Exact unset.
func normalizeNumericDate(raw string) NormalizedDate {
	parts := dateSeparators.Split(raw, -1)
	if len(parts) != 3 {
		return NormalizedDate{Value: raw, Exact: false}
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	return NormalizedDate{
		Value: padDay(day) + "/" + padDay(month) + "/" + year,
		Exact: true,
	}
}

// normalizeMonthNameDate converts a "10th May 2025"-style fragment into
// DD/MM/YYYY. The day may carry an ordinal suffix and a stray trailing
// letter; the month name is matched on its first three letters. Missing
// components default to 01 / January / 2025 and clear Exact.
func normalizeMonthNameDate(raw string) NormalizedDate {
	exact := true

	day := dayPattern.FindString(raw)
	if day == "" {
		day = "01"
		exact = false
	}

	month := "01"
	if m := monthPattern.FindStringSubmatch(raw); m != nil {
		if num, ok := monthNumbers[strings.ToLower(m[1])[:3]]; ok {
			month = num
		} else {
			exact = false
		}
	} else {
		exact = false
	}

	year := yearPattern.FindString(raw)
	if year == "" {
		year = "2025"
		exact = false
	} else if len(year) == 2 {
		year = "20" + year
	}

	return NormalizedDate{Value: padDay(day) + "/" + month + "/" + year, Exact: exact}
}

func padDay(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
