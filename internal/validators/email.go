package validators

import "strings"

// IsEmailValid aplica a regra mínima do cadastro: o e-mail precisa
// conter "@" e pelo menos um ".".
func IsEmailValid(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
