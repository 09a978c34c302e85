package models

import "time"

type Company struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GroupID *uint  `gorm:"column:grupo_id;index" json:"grupo_id"`
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	RegionID *uint   `gorm:"column:regiao_id;index" json:"regiao_id"`
	Region   *Region `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	LegalName string `gorm:"column:razao_social;size:200;not null" json:"razao_social"`
	TradeName string `gorm:"column:nome_fantasia;size:200" json:"nome_fantasia"`
	CNPJ      string `gorm:"column:cnpj;size:14;uniqueIndex;not null" json:"cnpj"`
	Phone     string `gorm:"column:telefone;size:20" json:"telefone"`
	Email     string `gorm:"column:email;size:254" json:"email"`
	Address   string `gorm:"column:endereco;size:255" json:"endereco"`
	LogoURL   string `gorm:"column:logo_url;size:500" json:"logo_url"`
	Active    bool   `gorm:"column:ativo;not null;default:true" json:"ativo"`

	Legacy LegacyFocalPoint `gorm:"embedded" json:"-"`

	Version int `gorm:"column:versao;not null;default:1" json:"versao"`

	CreatedBy uint  `gorm:"column:created_by" json:"created_by"`
	UpdatedBy *uint `gorm:"column:updated_by" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Company) TableName() string { return "empresas" }
