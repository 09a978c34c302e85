package focalpoint

import (
	"errors"
	"time"
)

var (
	ErrUnknownField = errors.New("focalpoint: campo desconhecido")
	ErrFieldValue   = errors.New("focalpoint: tipo de valor inválido para o campo")
)

// Collection guarda a lista de pontos focais de uma entidade e mantém a
// invariante: se a lista não estiver vazia, exatamente um registro é principal.
//
// A ordem da lista é a ordem de edição; o principal não é reordenado aqui.
type Collection struct {
	items []FocalPoint
	now   func() time.Time
}

// NewCollection copia os itens e já aplica Reconcile.
func NewCollection(items []FocalPoint) *Collection {
	c := &Collection{now: time.Now}
	c.Replace(items)
	return c
}

// Items devolve uma cópia da lista atual.
func (c *Collection) Items() []FocalPoint {
	out := make([]FocalPoint, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection) Len() int { return len(c.items) }

// Principal devolve o registro principal, se houver.
func (c *Collection) Principal() (FocalPoint, bool) {
	for _, fp := range c.items {
		if fp.IsPrincipal {
			return fp, true
		}
	}
	return FocalPoint{}, false
}

// Add acrescenta um registro vazio. O primeiro registro da lista nasce principal.
func (c *Collection) Add() FocalPoint {
	fp := FocalPoint{
		ID:           NewEphemeralID(c.now()),
		IsPrincipal:  len(c.items) == 0,
		DisplayOrder: c.nextOrder(),
	}
	c.items = append(c.items, fp)
	return fp
}

// Remove apaga o registro. Se era o principal e sobrou alguém, o primeiro
// restante vira principal. Devolve false se o id não existe.
func (c *Collection) Remove(id string) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}

	wasPrincipal := c.items[idx].IsPrincipal
	c.items = append(c.items[:idx], c.items[idx+1:]...)

	if wasPrincipal && len(c.items) > 0 {
		c.items[0].IsPrincipal = true
	}
	return true
}

// Update altera um campo do registro. Marcar um registro como principal
// desmarca todos os outros na mesma operação. Id desconhecido não faz nada.
//
// Campos texto recebem string, isPrincipal recebe bool e displayOrder recebe int.
func (c *Collection) Update(id string, field Field, value any) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := c.Items()
	fp := &next[idx]

	switch field {
	case FieldIsPrincipal:
		v, ok := value.(bool)
		if !ok {
			return ErrFieldValue
		}
		if v {
			for i := range next {
				next[i].IsPrincipal = false
			}
		}
		fp.IsPrincipal = v

	case FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return ErrFieldValue
		}
		fp.DisplayOrder = v

	case FieldName, FieldRole, FieldDescription, FieldNotes, FieldPhone, FieldEmail:
		v, ok := value.(string)
		if !ok {
			return ErrFieldValue
		}
		setText(fp, field, v)

	default:
		return ErrUnknownField
	}

	c.items = next
	c.Reconcile()
	return nil
}

// Replace troca a lista inteira (ex.: carregada da API) e repara a invariante.
// Registros sem id ou com id repetido recebem um id provisório novo.
func (c *Collection) Replace(items []FocalPoint) {
	c.items = make([]FocalPoint, len(items))
	copy(c.items, items)

	seen := make(map[string]struct{}, len(c.items))
	for i := range c.items {
		if _, dup := seen[c.items[i].ID]; c.items[i].ID == "" || dup {
			c.items[i].ID = NewEphemeralID(c.now())
		}
		seen[c.items[i].ID] = struct{}{}
	}

	c.Reconcile()
}

// Reconcile garante exatamente um principal em lista não vazia: sem principal,
// o primeiro vira principal; com mais de um, fica só o primeiro marcado.
func (c *Collection) Reconcile() {
	if len(c.items) == 0 {
		return
	}

	found := false
	for i := range c.items {
		if !c.items[i].IsPrincipal {
			continue
		}
		if found {
			c.items[i].IsPrincipal = false
			continue
		}
		found = true
	}

	if !found {
		c.items[0].IsPrincipal = true
	}
}

func (c *Collection) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) nextOrder() int {
	next := 0
	for _, fp := range c.items {
		if fp.DisplayOrder >= next {
			next = fp.DisplayOrder + 1
		}
	}
	return next
}

func setText(fp *FocalPoint, field Field, v string) {
	switch field {
	case FieldName:
		fp.Name = v
	case FieldRole:
		fp.Role = v
	case FieldDescription:
		fp.Description = v
	case FieldNotes:
		fp.Notes = v
	case FieldPhone:
		fp.Phone = v
	case FieldEmail:
		fp.Email = v
	}
}
