package validators

import "unicode"

// DigitCount conta apenas os dígitos do telefone, ignorando máscara
// como "(11) 99999-9999".
func DigitCount(phone string) int {
	n := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// IsPhoneValid exige pelo menos 10 dígitos (DDD + número).
func IsPhoneValid(phone string) bool {
	return DigitCount(phone) >= 10
}
