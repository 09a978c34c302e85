package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
)

// FocalPointPayload lê um ponto focal do corpo da requisição. Aceita as
// chaves antigas (is_principal, ordem, nome, ...) e id numérico ou texto.
type FocalPointPayload struct {
	focalpoint.FocalPoint
}

type focalPointWire struct {
	ID json.RawMessage `json:"id"`

	Name        string `json:"name"`
	Nome        string `json:"nome"`
	Role        string `json:"role"`
	Cargo       string `json:"cargo"`
	Description string `json:"description"`
	Descricao   string `json:"descricao"`
	Notes       string `json:"notes"`
	Observacoes string `json:"observacoes"`
	Phone       string `json:"phone"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`

	IsPrincipal       *bool `json:"isPrincipal"`
	IsPrincipalLegacy *bool `json:"is_principal"`
	DisplayOrder      *int  `json:"displayOrder"`
	DisplayOrderSnake *int  `json:"display_order"`
	Ordem             *int  `json:"ordem"`
}

func (p *FocalPointPayload) UnmarshalJSON(b []byte) error {
	var w focalPointWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	p.FocalPoint = focalpoint.FocalPoint{
		ID:          rawID(w.ID),
		Name:        first(w.Name, w.Nome),
		Role:        first(w.Role, w.Cargo),
		Description: first(w.Description, w.Descricao),
		Notes:       first(w.Notes, w.Observacoes),
		Phone:       first(w.Phone, w.Telefone),
		Email:       w.Email,
	}

	switch {
	case w.IsPrincipal != nil:
		p.IsPrincipal = *w.IsPrincipal
	case w.IsPrincipalLegacy != nil:
		p.IsPrincipal = *w.IsPrincipalLegacy
	}

	switch {
	case w.DisplayOrder != nil:
		p.DisplayOrder = *w.DisplayOrder
	case w.DisplayOrderSnake != nil:
		p.DisplayOrder = *w.DisplayOrderSnake
	case w.Ordem != nil:
		p.DisplayOrder = *w.Ordem
	}

	return nil
}

// FocalPointList converte o array recebido. nil significa "campo ausente".
func FocalPointList(in *[]FocalPointPayload) *[]focalpoint.FocalPoint {
	if in == nil {
		return nil
	}
	out := make([]focalpoint.FocalPoint, len(*in))
	for i, p := range *in {
		out[i] = p.FocalPoint
	}
	return &out
}

func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return ""
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
