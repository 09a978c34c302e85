package validators

import (
	"errors"
	"net"
	"regexp"
	"strings"
)

const (
	maxEmailLength      = 254
	maxEmailLocalLength = 64
)

var (
	ErrEmailFormat       = errors.New("E-mail inválido.")
	ErrEmailTooLong      = errors.New("E-mail deve ter no máximo 254 caracteres.")
	ErrEmailLocalTooLong = errors.New("A parte antes do @ deve ter no máximo 64 caracteres.")
)

// local@dominio.tld, sem espaços, com pelo menos um ponto depois do @
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail aceita vazio (campo opcional).
func ValidateEmail(value string) error {
	email := strings.TrimSpace(value)
	if email == "" {
		return nil
	}

	if !emailPattern.MatchString(email) {
		return ErrEmailFormat
	}

	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}

	if at := strings.LastIndex(email, "@"); at > maxEmailLocalLength {
		return ErrEmailLocalTooLong
	}

	return nil
}

// IsEmailDomainValid consulta MX e, na falta dele, A/AAAA do domínio.
// Usado apenas no cadastro de usuários.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
