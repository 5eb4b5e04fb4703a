// Package transform cleans raw extract rows into domain values and encodes
// the pipeline's business rules: null-token mapping, phone and category
// standardization, ambiguous date resolution, deduplication, median price
// back-fill, and the sales-to-orders aggregation.
package transform

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nullLike is the closed set of tokens treated as absent values. Matching is
// exact after trimming; other casings (e.g. "NAN") pass through as text.
var nullLike = map[string]struct{}{
	"":     {},
	"nan":  {},
	"NaN":  {},
	"none": {},
	"None": {},
	"null": {},
	"NULL": {},
}

var (
	nonDigitPattern  = regexp.MustCompile(`\D`)
	slashDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

	titleCaser = cases.Title(language.English)

	// Layouts tried by the general parse pass, before the slash heuristic.
	dateLayouts = []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006/01/02",
	}
)

// NormalizeNull trims the value and maps null-like tokens to the empty
// string, which represents an absent value throughout the pipeline.
func NormalizeNull(value string) string {
	s := strings.TrimSpace(value)
	if _, ok := nullLike[s]; ok {
		return ""
	}
	return s
}

// StandardizePhone formats phone numbers as +91-XXXXXXXXXX when possible.
// Ten digits get the country code prefix; twelve digits starting with 91
// have the prefix stripped and reapplied. Anything else is returned as the
// trimmed original: this is best effort formatting, not validation.
func StandardizePhone(value string) string {
	phone := NormalizeNull(value)
	if phone == "" {
		return ""
	}
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if len(digits) == 10 {
		return "+91-" + digits
	}
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		return "+91-" + digits[2:]
	}
	return phone
}

// StandardizeCategory title-cases the category and substitutes "Unknown"
// for absent values.
func StandardizeCategory(value string) string {
	cat := NormalizeNull(value)
	if cat == "" {
		return "Unknown"
	}
	return titleCaser.String(strings.ToLower(cat))
}

// DateResolution reports how ParseDate arrived at its result.
type DateResolution int

const (
	// DateUnparseable means no interpretation yielded a valid date.
	DateUnparseable DateResolution = iota
	// DateParsed means the general layout pass succeeded.
	DateParsed
	// DateResolvedByHeuristic means the slash-pattern day/month heuristic
	// decided the interpretation.
	DateResolvedByHeuristic
)

// ParseDate converts a raw date value to YYYY-MM-DD. The general layout pass
// runs first; if it fails and the value looks like a/b/yyyy, the component
// magnitudes decide the interpretation: b > 12 forces month-first, a > 12
// forces day-first, and the ambiguous case tries month-first then retries
// day-first. Absent or unresolvable values yield the empty string.
func ParseDate(value string) (string, DateResolution) {
	s := NormalizeNull(value)
	if s == "" {
		return "", DateUnparseable
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), DateParsed
		}
	}

	m := slashDatePattern.FindStringSubmatch(s)
	if m == nil {
		return "", DateUnparseable
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])

	switch {
	case b > 12:
		if t, err := time.Parse("1/2/2006", s); err == nil {
			return t.Format("2006-01-02"), DateResolvedByHeuristic
		}
	case a > 12:
		if t, err := time.Parse("2/1/2006", s); err == nil {
			return t.Format("2006-01-02"), DateResolvedByHeuristic
		}
	default:
		if t, err := time.Parse("1/2/2006", s); err == nil {
			return t.Format("2006-01-02"), DateResolvedByHeuristic
		}
		if t, err := time.Parse("2/1/2006", s); err == nil {
			return t.Format("2006-01-02"), DateResolvedByHeuristic
		}
	}

	return "", DateUnparseable
}

// ParseNumber coerces a normalized value to a float. The second return is
// false when the value is absent or not numeric.
func ParseNumber(value string) (float64, bool) {
	s := NormalizeNull(value)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
