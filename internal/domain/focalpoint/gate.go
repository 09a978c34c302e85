package focalpoint

import "fmt"

// ValidationError carrega todos os campos que impedem salvar a coleção.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid_focal_points: %d campo(s) inválido(s)", len(e.Fields))
}

// Gate é a mesma checagem do editor, rodada no servidor antes de gravar:
// devolve a lista normalizada ou *ValidationError.
func Gate(items []FocalPoint) ([]FocalPoint, error) {
	ed := NewEditor(items)
	if problems := ed.Check(); len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}
	return Normalize(ed.Items()), nil
}
