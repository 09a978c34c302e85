// Package focalpoint mantém a coleção de pontos focais de um grupo ou empresa:
// a regra de "exatamente um principal", a validação dos campos de contato,
// a compatibilidade com as colunas legadas e as visões de exibição.
package focalpoint

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gente-api/internal/models"
)

type FocalPoint struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Description  string `json:"description"`
	Notes        string `json:"notes"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IsPrincipal  bool   `json:"isPrincipal"`
	DisplayOrder int    `json:"displayOrder"`
}

// Field identifica um campo editável do ponto focal.
type Field string

const (
	FieldName         Field = "name"
	FieldRole         Field = "role"
	FieldDescription  Field = "description"
	FieldNotes        Field = "notes"
	FieldPhone        Field = "phone"
	FieldEmail        Field = "email"
	FieldIsPrincipal  Field = "isPrincipal"
	FieldDisplayOrder Field = "displayOrder"
)

// Kind é o tipo de entidade dona da coleção.
type Kind string

const (
	KindGroup   Kind = "grupo"
	KindCompany Kind = "empresa"
)

// Table devolve a tabela de linhas de ponto focal do tipo de entidade.
func (k Kind) Table() string {
	switch k {
	case KindCompany:
		return models.CompanyFocalPointTable
	default:
		return models.GroupFocalPointTable
	}
}

const ephemeralPrefix = "tmp-"

// NewEphemeralID gera o identificador provisório de um registro ainda não salvo.
func NewEphemeralID(now time.Time) string {
	return fmt.Sprintf("%s%d-%s", ephemeralPrefix, now.UnixMilli(), uuid.NewString()[:8])
}

// IsEphemeralID informa se o id é provisório (registro ainda não persistido).
func IsEphemeralID(id string) bool {
	return strings.HasPrefix(id, ephemeralPrefix)
}
