package usecase

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// StandardizePhoneNumber converte o número para o formato E.164
// (+[código do país][número]). É uma heurística por contagem de dígitos,
// não um validador E.164 completo — limitação conhecida.
func StandardizePhoneNumber(phone string) (string, error) {
	digits := nonDigits.ReplaceAllString(phone, "")

	// Já veio com código do país explícito. A checagem é na string crua:
	// " +555..." não conta como prefixado e cai nas regras de dígitos.
	if strings.HasPrefix(phone, "+") {
		return "+" + digits, nil
	}

	// EUA/Canadá sem código do país (10 dígitos)
	if len(digits) == 10 {
		return "+1" + digits, nil
	}

	// EUA/Canadá com código do país (11 dígitos começando em 1)
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		return "+" + digits, nil
	}

	// Mais de 7 dígitos: assume que já inclui o código do país
	if len(digits) > 7 {
		return "+" + digits, nil
	}

	return "", ErrInvalidPhone
}
