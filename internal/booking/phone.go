package booking

import (
	"regexp"
	"strings"
)

// loosePhonePattern accepts 10-15 digits with an optional leading + and
// common separators.
var loosePhonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{8,19}$`)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// normalizeMobile reduces a mobile number to its national significant
// digits so "01012345678" and "+20 1012345678" compare equal. Only the
// Egyptian country code is folded; foreign numbers keep their full
// digit string.
func normalizeMobile(mobile string) string {
	digits := nonDigits.ReplaceAllString(mobile, "")
	digits = strings.TrimPrefix(digits, "00")
	if strings.HasPrefix(digits, "20") && len(digits) > 10 {
		digits = digits[2:]
	}
	return strings.TrimLeft(digits, "0")
}

// sameMobile reports whether two mobile numbers share normalized digits.
// Two empty numbers never conflict.
func sameMobile(a, b string) bool {
	na, nb := normalizeMobile(a), normalizeMobile(b)
	if na == "" && nb == "" {
		return false
	}
	return na == nb
}

// isValidMobile applies the loose guest-phone check: shape first, then
// 10-15 digits.
func isValidMobile(mobile string) bool {
	if !loosePhonePattern.MatchString(strings.TrimSpace(mobile)) {
		return false
	}
	digits := nonDigits.ReplaceAllString(mobile, "")
	return len(digits) >= 10 && len(digits) <= 15
}

var countryPrefixes = []struct {
	prefix  string
	country string
}{
	{"20", "EG"},
	{"966", "SA"},
	{"971", "AE"},
	{"965", "KW"},
	{"974", "QA"},
	{"973", "BH"},
	{"962", "JO"},
	{"44", "GB"},
	{"1", "US"},
}

// detectCountryCode resolves a dialing-code prefix to an ISO country.
// Local-format numbers (leading 0) and unknown prefixes resolve to the
// fallback country.
func detectCountryCode(mobile, fallback string) string {
	digits := nonDigits.ReplaceAllString(mobile, "")
	digits = strings.TrimPrefix(digits, "00")
	if digits == "" || strings.HasPrefix(digits, "0") {
		return fallback
	}
	if !strings.HasPrefix(mobile, "+") && !strings.HasPrefix(strings.TrimSpace(mobile), "00") {
		// No international prefix given, assume a local number
		return fallback
	}
	for _, cp := range countryPrefixes {
		if strings.HasPrefix(digits, cp.prefix) {
			return cp.country
		}
	}
	return fallback
}
