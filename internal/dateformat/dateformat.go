// Package dateformat validates the YYYY-MM-DD dates accepted by lore remind.
//
// Validation happens in two steps. A single left-to-right scan copies the
// digits of each field into a fixed "YYYY-MM-DD" template, silently dropping
// digits beyond a field's width. The filled template is then compared
// byte-for-byte with the input up to the terminator. Short fields, extra
// digits and misplaced separators all surface as a mismatch in the second
// step rather than in the scan itself.
package dateformat

import "time"

// Layout is the canonical date shape.
const Layout = "YYYY-MM-DD"

// phase widths and offsets into Layout
var (
	fieldWidth  = [3]int{4, 2, 2}
	fieldOffset = [3]int{0, 5, 8}
)

// Validator checks date strings. The zero value reproduces the lenient
// behavior: shape only, no month or day range checks.
type Validator struct {
	// Strict additionally requires the date to exist on the calendar.
	Strict bool
}

// IsValidDate reports whether s has the YYYY-MM-DD shape, optionally
// followed by a space and an ignored suffix. Month and day ranges are not
// checked; use Validator{Strict: true} for that.
func IsValidDate(s string) bool {
	return Validator{}.IsValid(s)
}

// Canonical returns the YYYY-MM-DD prefix of s consumed by the scan.
func Canonical(s string) (string, bool) {
	return Validator{}.Canonical(s)
}

// IsValid reports whether s is accepted by v.
func (v Validator) IsValid(s string) bool {
	_, ok := v.Canonical(s)
	return ok
}

// Canonical scans s and returns the reconstructed date when it matches the
// input up to the terminator.
func (v Validator) Canonical(s string) (string, bool) {
	date := []byte(Layout)
	var count [3]int
	phase := 0
	end := len(s)

scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			if count[phase] >= fieldWidth[phase] {
				break // dropped, caught by the comparison below
			}
			date[fieldOffset[phase]+count[phase]] = c
			count[phase]++
		case c == '-' && phase < 2:
			phase++
		case c == ' ' && phase == 2:
			end = i
			break scan
		default:
			return "", false
		}
	}

	canonical := string(date)
	if canonical != s[:end] {
		return "", false
	}

	if v.Strict {
		if _, err := time.Parse("2006-01-02", canonical); err != nil {
			return "", false
		}
	}

	return canonical, true
}

// Today formats t in the canonical layout.
func Today(t time.Time) string {
	return t.Format("2006-01-02")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
