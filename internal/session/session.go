// Package session carrega a identidade do usuário autenticado em cada
// requisição. Substitui estado global de login: quem grava recebe a sessão
// explicitamente.
package session

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const contextKey = "session"

const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)

var ErrInvalidToken = errors.New("invalid_token")

type Session struct {
	UserID uint
	Role   string
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

func Set(c *gin.Context, s Session) {
	c.Set(contextKey, s)
}

func From(c *gin.Context) (Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

// Issue assina um JWT HS256 para a sessão.
func Issue(secret string, s Session, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  s.UserID,
		"role": s.Role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve a sessão contida nele.
func Parse(secret, tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	userID, ok := claims["sub"].(float64)
	if !ok || userID <= 0 {
		return Session{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return Session{UserID: uint(userID), Role: role}, nil
}
