package models

import "time"

type Region struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"column:nome;size:100;uniqueIndex;not null" json:"nome"`
	Description string `gorm:"column:descricao;size:255" json:"descricao"`
	Active      bool   `gorm:"column:ativo;not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Region) TableName() string { return "regioes" }
