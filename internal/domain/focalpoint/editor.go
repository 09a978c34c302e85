package focalpoint

import (
	"strings"

	"github.com/BruksfildServices01/gente-api/internal/validators"
)

const msgNameRequired = "Nome do ponto focal é obrigatório."

// FieldError é um erro de validação de um campo de um registro.
type FieldError struct {
	ID      string `json:"id"`
	Index   int    `json:"index"`
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// Editor é o editor de lista: aplica as mutações na Collection e valida
// telefone e e-mail a cada alteração, expondo se há erro em qualquer registro.
type Editor struct {
	coll      *Collection
	errs      map[string]map[Field]string
	hasErrors bool
	onChange  func(hasErrors bool)
}

func NewEditor(items []FocalPoint) *Editor {
	e := &Editor{
		coll: NewCollection(nil),
		errs: map[string]map[Field]string{},
	}
	e.Replace(items)
	return e
}

// OnValidityChange registra quem deve ser avisado quando o sinal agregado muda
// (o formulário pai usa isso para travar o salvar).
func (e *Editor) OnValidityChange(fn func(hasErrors bool)) {
	e.onChange = fn
}

func (e *Editor) Items() []FocalPoint { return e.coll.Items() }

func (e *Editor) Add() FocalPoint {
	return e.coll.Add()
}

func (e *Editor) Remove(id string) bool {
	if !e.coll.Remove(id) {
		return false
	}
	delete(e.errs, id)
	e.refresh()
	return true
}

// Set altera o campo e, para telefone e e-mail, valida na hora.
func (e *Editor) Set(id string, field Field, value any) error {
	if err := e.coll.Update(id, field, value); err != nil {
		return err
	}

	if field == FieldPhone || field == FieldEmail {
		if e.coll.indexOf(id) >= 0 {
			e.validateField(id, field, value.(string))
		}
	}

	e.refresh()
	return nil
}

// Replace troca a lista inteira e revalida todos os registros.
func (e *Editor) Replace(items []FocalPoint) {
	e.coll.Replace(items)
	e.errs = map[string]map[Field]string{}
	for _, fp := range e.coll.Items() {
		e.validateField(fp.ID, FieldPhone, fp.Phone)
		e.validateField(fp.ID, FieldEmail, fp.Email)
	}
	e.refresh()
}

// Errors devolve os erros de campo do registro.
func (e *Editor) Errors(id string) map[Field]string {
	out := map[Field]string{}
	for f, msg := range e.errs[id] {
		out[f] = msg
	}
	return out
}

// HasErrors é o sinal agregado de telefone/e-mail inválido em qualquer registro.
func (e *Editor) HasErrors() bool { return e.hasErrors }

// Check devolve todos os problemas que impedem salvar: telefone/e-mail
// inválidos e nome vazio, na ordem da lista.
func (e *Editor) Check() []FieldError {
	var out []FieldError
	for i, fp := range e.coll.Items() {
		if strings.TrimSpace(fp.Name) == "" {
			out = append(out, FieldError{ID: fp.ID, Index: i, Field: FieldName, Message: msgNameRequired})
		}
		for _, f := range []Field{FieldPhone, FieldEmail} {
			if msg, ok := e.errs[fp.ID][f]; ok {
				out = append(out, FieldError{ID: fp.ID, Index: i, Field: f, Message: msg})
			}
		}
	}
	return out
}

func (e *Editor) validateField(id string, field Field, value string) {
	var err error
	switch field {
	case FieldPhone:
		err = validators.ValidatePhone(value)
	case FieldEmail:
		err = validators.ValidateEmail(value)
	default:
		return
	}

	if err == nil {
		if m, ok := e.errs[id]; ok {
			delete(m, field)
			if len(m) == 0 {
				delete(e.errs, id)
			}
		}
		return
	}

	if e.errs[id] == nil {
		e.errs[id] = map[Field]string{}
	}
	e.errs[id][field] = err.Error()
}

func (e *Editor) refresh() {
	has := len(e.errs) > 0
	if has == e.hasErrors {
		return
	}
	e.hasErrors = has
	if e.onChange != nil {
		e.onChange(has)
	}
}
