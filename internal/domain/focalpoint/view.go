package focalpoint

import "fmt"

const (
	Placeholder    = "—"
	PlaceholderMsg = "Nenhum ponto focal cadastrado"
	PrincipalBadge = "Principal"
)

// CompactView é o resumo do tooltip: só o principal e a contagem.
type CompactView struct {
	Empty       bool   `json:"empty"`
	Placeholder string `json:"placeholder,omitempty"`
	Name        string `json:"name,omitempty"`
	Count       int    `json:"count"`
	Badge       string `json:"badge,omitempty"`
}

// Compact resume a lista de exibição. Sem principal marcado, usa o primeiro.
func Compact(list []FocalPoint) CompactView {
	if len(list) == 0 {
		return CompactView{Empty: true, Placeholder: Placeholder}
	}

	head := list[0]
	for _, fp := range list {
		if fp.IsPrincipal {
			head = fp
			break
		}
	}

	v := CompactView{Name: head.Name, Count: len(list)}
	if len(list) > 1 {
		v.Badge = fmt.Sprintf("+%d", len(list)-1)
	}
	return v
}

type ExpandedEntry struct {
	FocalPoint
	Badge string `json:"badge,omitempty"`
}

// ExpandedView lista todos os registros, somente leitura.
type ExpandedView struct {
	Empty       bool            `json:"empty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Entries     []ExpandedEntry `json:"entries"`
}

func Expanded(list []FocalPoint) ExpandedView {
	if len(list) == 0 {
		return ExpandedView{Empty: true, Placeholder: PlaceholderMsg, Entries: []ExpandedEntry{}}
	}

	entries := make([]ExpandedEntry, 0, len(list))
	for _, fp := range list {
		e := ExpandedEntry{FocalPoint: fp}
		if fp.IsPrincipal {
			e.Badge = PrincipalBadge
		}
		entries = append(entries, e)
	}
	return ExpandedView{Entries: entries}
}

type Placement string

const (
	PlaceAbove Placement = "above"
	PlaceBelow Placement = "below"
)

// Anchor descreve o gatilho e o popup no momento do hover, em pixels de viewport.
type Anchor struct {
	TriggerTop     float64
	TriggerBottom  float64
	PopupHeight    float64
	ViewportHeight float64
	Gap            float64
}

// PlacePopup escolhe abrir abaixo quando cabe; senão abre acima se houver mais
// espaço acima. Deve ser chamado a cada exibição, nunca guardado.
func PlacePopup(a Anchor) Placement {
	need := a.PopupHeight + a.Gap
	below := a.ViewportHeight - a.TriggerBottom
	above := a.TriggerTop

	if below >= need {
		return PlaceBelow
	}
	if above > below {
		return PlaceAbove
	}
	return PlaceBelow
}
