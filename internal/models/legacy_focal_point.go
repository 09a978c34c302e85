package models

// LegacyFocalPoint são as colunas planas de ponto focal anteriores à tabela
// de pontos focais. Só leitura para a funcionalidade nova.
type LegacyFocalPoint struct {
	Name        *string `gorm:"column:ponto_focal_nome;size:150" json:"-"`
	Description *string `gorm:"column:ponto_focal_descricao;type:text" json:"-"`
	Notes       *string `gorm:"column:ponto_focal_observacoes;type:text" json:"-"`
	IsPrincipal bool    `gorm:"column:ponto_focal_principal;default:false" json:"-"`
}
