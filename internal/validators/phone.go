package validators

import (
	"errors"
	"strings"
)

var (
	ErrPhoneTooShort   = errors.New("Telefone deve ter pelo menos 10 dígitos.")
	ErrPhoneTooLong    = errors.New("Telefone deve ter no máximo 11 dígitos.")
	ErrInvalidAreaCode = errors.New("DDD inválido.")
	ErrMobilePrefix    = errors.New("Celular deve começar com 9 após o DDD.")
)

// DDDs aceitos. Mantido como veio do cadastro original; não "corrigir" sem fonte oficial.
var validAreaCodes = map[string]struct{}{}

func init() {
	codes := []string{
		"11", "12", "13", "14", "15", "16", "17", "18", "19",
		"21", "22", "24", "27", "28",
		"31", "32", "33", "34", "35", "37", "38",
		"41", "42", "43", "44", "45", "46", "47", "48", "49",
		"51", "53", "54", "55",
		"61", "62", "63", "64", "65", "66", "67", "68", "69",
		"71", "73", "74", "75", "77", "79",
		"81", "82", "83", "84", "85", "86", "87", "88", "89",
		"91", "92", "93", "94", "95", "96", "97", "98", "99",
	}
	for _, c := range codes {
		validAreaCodes[c] = struct{}{}
	}
}

// Digits remove tudo que não for dígito.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidAreaCode informa se o DDD de dois dígitos está na lista aceita.
func IsValidAreaCode(ddd string) bool {
	_, ok := validAreaCodes[ddd]
	return ok
}

// ValidatePhone aceita vazio (campo opcional). Fixo com 10 dígitos não tem checagem extra;
// celular com 11 dígitos exige DDD válido e 9 logo após o DDD.
func ValidatePhone(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	digits := Digits(value)

	switch {
	case len(digits) < 10:
		return ErrPhoneTooShort
	case len(digits) > 11:
		return ErrPhoneTooLong
	case len(digits) == 11:
		if !IsValidAreaCode(digits[:2]) {
			return ErrInvalidAreaCode
		}
		if digits[2] != '9' {
			return ErrMobilePrefix
		}
	}

	return nil
}
