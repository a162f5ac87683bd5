package service

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"order-webhook/internal/domain"
	"order-webhook/internal/textutil"
)

// MinPhoneDigits is the shortest canonical number accepted for dispatch.
const MinPhoneDigits = 9

// internationalCodes are checked in order; the first prefix match wins.
var internationalCodes = [...]string{
	"966", // Saudi Arabia
	"971", // UAE
	"20",  // Egypt
	"249", // Sudan
	"967", // Yemen
	"962", // Jordan
	"965", // Kuwait
	"974", // Qatar
	"973", // Bahrain
	"968", // Oman
	"964", // Iraq
	"212", // Morocco
	"213", // Algeria
	"216", // Tunisia
	"218", // Libya
	"970", // Palestine
	"961", // Lebanon
	"963", // Syria
	"222", // Mauritania
}

// localRule rewrites a national number with a trunk 0 into international form.
type localRule struct {
	prefix string
	length int
	code   string
	// uaeCode replaces code when the country hint points at the UAE.
	uaeCode string
}

// localRules are checked in order; the first match wins.
var localRules = [...]localRule{
	{prefix: "01", length: 11, code: "20"},                  // Egypt
	{prefix: "09", length: 10, code: "249"},                 // Sudan
	{prefix: "07", length: 9, code: "967"},                  // Yemen
	{prefix: "07", length: 10, code: "962"},                 // Jordan
	{prefix: "05", length: 10, code: "966", uaeCode: "971"}, // Saudi Arabia, or UAE by hint
}

var uaeHints = map[string]bool{
	"UAE":                  true,
	"AE":                   true,
	"ARE":                  true,
	"UNITED ARAB EMIRATES": true,
	"الإمارات":             true,
}

// Canonicalize converts a raw phone number into an international number.
// Numbers already carrying a known calling code are kept as they are, so a
// UAE "9715..." number is never treated as a local Saudi "05..." number.
func Canonicalize(rawPhone, countryHint string) (domain.CanonicalPhone, error) {
	digits := textutil.Digits(rawPhone)
	if digits == "" {
		return "", &domain.PhoneError{Reason: domain.PhoneEmpty}
	}

	canonical := canonicalDigits(digits, countryHint)
	if len(canonical) < MinPhoneDigits {
		return "", &domain.PhoneError{Reason: domain.PhoneTooShort, Digits: canonical}
	}

	return domain.CanonicalPhone(canonical), nil
}

func canonicalDigits(digits, countryHint string) string {
	for _, code := range internationalCodes {
		if strings.HasPrefix(digits, code) {
			return digits
		}
	}

	for _, r := range localRules {
		if len(digits) != r.length || !strings.HasPrefix(digits, r.prefix) {
			continue
		}
		code := r.code
		if r.uaeCode != "" && isUAE(countryHint) {
			code = r.uaeCode
		}
		return code + digits[1:]
	}

	return digits
}

func isUAE(hint string) bool {
	return uaeHints[strings.ToUpper(strings.TrimSpace(hint))]
}

// Plausible reports whether phone parses as a valid number for its calling code.
// It is advisory only; canonicalization never depends on it.
func Plausible(phone domain.CanonicalPhone) bool {
	num, err := phonenumbers.Parse(phone.E164(), "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
