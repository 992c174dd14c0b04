package usecase

import (
	"fmt"
	"strings"
)

const countryCodeBR = "55"

// NormalizePhone turns user input into the "+55 XX XXXXX-XXXX" display form.
//
// The national number (area code + subscriber) must have 10 or 11 digits. A leading
// country code is only stripped when the input is long enough to carry one, so numbers
// from area code 55 are not mistaken for it.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, countryCodeBR) {
		digits = digits[len(countryCodeBR):]
	}

	switch len(digits) {
	case 11:
		return fmt.Sprintf("+%s %s %s-%s", countryCodeBR, digits[:2], digits[2:7], digits[7:]), nil
	case 10:
		return fmt.Sprintf("+%s %s %s-%s", countryCodeBR, digits[:2], digits[2:6], digits[6:]), nil
	default:
		return "", ErrInvalidClientPhone
	}
}
