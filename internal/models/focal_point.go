package models

import "time"

// FocalPointRow é a linha de ponto focal, com o mesmo formato nas tabelas
// de grupo e de empresa. A tabela é escolhida pelo repositório.
type FocalPointRow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ParentID uint `gorm:"column:parent_id;not null;index" json:"parent_id"`

	Name        string  `gorm:"column:nome;type:text;not null" json:"nome"`
	Role        *string `gorm:"column:cargo;type:text" json:"cargo"`
	Description *string `gorm:"column:descricao;type:text" json:"descricao"`
	Notes       *string `gorm:"column:observacoes;type:text" json:"observacoes"`
	Phone       *string `gorm:"column:telefone;size:20" json:"telefone"`
	Email       *string `gorm:"column:email;size:254" json:"email"`
	IsPrincipal bool    `gorm:"column:is_principal;default:false" json:"is_principal"`
	Order       int     `gorm:"column:ordem;default:0" json:"ordem"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy uint      `gorm:"column:created_by;not null" json:"created_by"`
	UpdatedBy *uint     `gorm:"column:updated_by" json:"updated_by"`
}

// GroupFocalPoint e CompanyFocalPoint existem para o AutoMigrate criar as
// chaves estrangeiras (parent_id com cascade, created_by para usuarios).
type GroupFocalPoint struct {
	FocalPointRow `gorm:"embedded"`

	Group   *Group `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;" json:"-"`
	Creator *User  `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT;" json:"-"`
}

func (GroupFocalPoint) TableName() string { return GroupFocalPointTable }

type CompanyFocalPoint struct {
	FocalPointRow `gorm:"embedded"`

	Company *Company `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;" json:"-"`
	Creator *User    `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT;" json:"-"`
}

func (CompanyFocalPoint) TableName() string { return CompanyFocalPointTable }

const (
	GroupFocalPointTable   = "grupo_pontos_focais"
	CompanyFocalPointTable = "empresa_pontos_focais"
)
