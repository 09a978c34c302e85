package models

import "time"

type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"column:nome;size:150;not null" json:"nome"`
	Description string `gorm:"column:descricao;type:text" json:"descricao"`
	Active      bool   `gorm:"column:ativo;not null;default:true" json:"ativo"`

	Legacy LegacyFocalPoint `gorm:"embedded" json:"-"`

	Version int `gorm:"column:versao;not null;default:1" json:"versao"`

	CreatedBy uint  `gorm:"column:created_by" json:"created_by"`
	UpdatedBy *uint `gorm:"column:updated_by" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Group) TableName() string { return "grupos" }
