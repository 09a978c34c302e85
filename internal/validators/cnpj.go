package validators

import "errors"

var ErrInvalidCNPJ = errors.New("CNPJ inválido.")

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// NormalizeCNPJ aceita o CNPJ com ou sem máscara e devolve os 14 dígitos.
func NormalizeCNPJ(value string) (string, error) {
	d := Digits(value)
	if len(d) != 14 || allSame(d) {
		return "", ErrInvalidCNPJ
	}

	if cnpjDigit(d[:12], cnpjWeights1) != d[12] || cnpjDigit(d[:13], cnpjWeights2) != d[13] {
		return "", ErrInvalidCNPJ
	}
	return d, nil
}

func cnpjDigit(base string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(base[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
