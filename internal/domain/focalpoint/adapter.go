package focalpoint

import (
	"sort"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/gente-api/internal/models"
)

// LegacyID é o id do registro sintetizado a partir das colunas legadas.
const LegacyID = "legacy"

// Legacy é a representação antiga: um único ponto focal em colunas do próprio pai.
type Legacy struct {
	Name        string
	Description string
	Notes       string
	IsPrincipal bool
}

func (l Legacy) empty() bool {
	return strings.TrimSpace(l.Name) == "" &&
		strings.TrimSpace(l.Description) == "" &&
		strings.TrimSpace(l.Notes) == ""
}

// Parent é o que a exibição precisa saber do grupo/empresa.
type Parent struct {
	FocalPoints []FocalPoint
	Legacy      Legacy
}

// Source é a origem dos pontos focais de um pai: CollectionSource,
// LegacySource ou EmptySource.
type Source interface {
	isSource()
}

type CollectionSource struct{ Items []FocalPoint }

type LegacySource struct{ Legacy Legacy }

type EmptySource struct{}

func (CollectionSource) isSource() {}
func (LegacySource) isSource()     {}
func (EmptySource) isSource()      {}

// Classify decide a origem: a tabela nova tem prioridade sobre as colunas legadas.
func Classify(p Parent) Source {
	if len(p.FocalPoints) > 0 {
		return CollectionSource{Items: p.FocalPoints}
	}
	if !p.Legacy.empty() {
		return LegacySource{Legacy: p.Legacy}
	}
	return EmptySource{}
}

// ToDisplayList monta a lista de exibição, principal primeiro.
// O registro legado é só para exibição e nunca é gravado.
func ToDisplayList(p Parent) []FocalPoint {
	switch src := Classify(p).(type) {
	case CollectionSource:
		out := make([]FocalPoint, len(src.Items))
		copy(out, src.Items)
		SortForDisplay(out)
		return out
	case LegacySource:
		return []FocalPoint{{
			ID:          LegacyID,
			Name:        src.Legacy.Name,
			Description: src.Legacy.Description,
			Notes:       src.Legacy.Notes,
			IsPrincipal: src.Legacy.IsPrincipal,
		}}
	default:
		return []FocalPoint{}
	}
}

// SortForDisplay ordena principal primeiro e depois por DisplayOrder.
func SortForDisplay(list []FocalPoint) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].IsPrincipal != list[j].IsPrincipal {
			return list[i].IsPrincipal
		}
		return list[i].DisplayOrder < list[j].DisplayOrder
	})
}

// LegacyFromModel lê as colunas legadas do pai.
func LegacyFromModel(l models.LegacyFocalPoint) Legacy {
	return Legacy{
		Name:        deref(l.Name),
		Description: deref(l.Description),
		Notes:       deref(l.Notes),
		IsPrincipal: l.IsPrincipal,
	}
}

// FromRows converte as linhas persistidas no formato uniforme.
func FromRows(rows []models.FocalPointRow) []FocalPoint {
	out := make([]FocalPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, FocalPoint{
			ID:           strconv.FormatUint(uint64(r.ID), 10),
			Name:         r.Name,
			Role:         deref(r.Role),
			Description:  deref(r.Description),
			Notes:        deref(r.Notes),
			Phone:        deref(r.Phone),
			Email:        deref(r.Email),
			IsPrincipal:  r.IsPrincipal,
			DisplayOrder: r.Order,
		})
	}
	return out
}

// ToRows monta as linhas a gravar, com todos os textos aparados. Os ids
// não são levados: a gravação substitui o conjunto inteiro e o banco gera ids novos.
func ToRows(parentID uint, items []FocalPoint) []models.FocalPointRow {
	rows := make([]models.FocalPointRow, 0, len(items))
	for _, fp := range items {
		rows = append(rows, models.FocalPointRow{
			ParentID:    parentID,
			Name:        strings.TrimSpace(fp.Name),
			Role:        ptr(fp.Role),
			Description: ptr(fp.Description),
			Notes:       ptr(fp.Notes),
			Phone:       ptr(fp.Phone),
			Email:       ptr(fp.Email),
			IsPrincipal: fp.IsPrincipal,
			Order:       fp.DisplayOrder,
		})
	}
	return rows
}

// Normalize prepara a lista para gravação: invariante reparada e ordem
// igual à posição na lista do editor.
func Normalize(items []FocalPoint) []FocalPoint {
	out := NewCollection(items).Items()
	for i := range out {
		out[i].DisplayOrder = i
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ptr apara o texto; vazio vira NULL.
func ptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
