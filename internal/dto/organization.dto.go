package dto

import (
	"time"

	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	"github.com/BruksfildServices01/gente-api/internal/models"
)

// --------- Requests ---------

type GroupRequest struct {
	Name        string               `json:"nome" binding:"required"`
	Description string               `json:"descricao"`
	Active      *bool                `json:"ativo"`
	FocalPoints *[]FocalPointPayload `json:"focalPoints"`
	Version     *int                 `json:"version"`
}

type CompanyRequest struct {
	LegalName   string               `json:"razao_social" binding:"required"`
	TradeName   string               `json:"nome_fantasia"`
	CNPJ        string               `json:"cnpj" binding:"required"`
	Phone       string               `json:"telefone"`
	Email       string               `json:"email"`
	Address     string               `json:"endereco"`
	GroupID     *uint                `json:"grupo_id"`
	RegionID    *uint                `json:"regiao_id"`
	Active      *bool                `json:"ativo"`
	FocalPoints *[]FocalPointPayload `json:"focalPoints"`
	Version     *int                 `json:"version"`
}

type RegionRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
	Active      *bool  `json:"ativo"`
}

// --------- Responses ---------

// FocalPointBlock é o que as telas de detalhe precisam dos pontos focais:
// a coleção editável, a lista de exibição e a visão expandida.
type FocalPointBlock struct {
	FocalPoints []focalpoint.FocalPoint `json:"focalPoints"`
	Source      string                  `json:"focalPointSource"`
	Display     []focalpoint.FocalPoint `json:"displayFocalPoints"`
	View        focalpoint.ExpandedView `json:"focalPointView"`
}

type GroupDetailDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	Active      bool      `json:"ativo"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	FocalPointBlock
}

type GroupListItemDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Active      bool   `json:"ativo"`
	Version     int    `json:"version"`

	FocalPointSummary focalpoint.CompactView `json:"focalPointSummary"`
}

type CompanyDetailDTO struct {
	ID        uint      `json:"id"`
	LegalName string    `json:"razao_social"`
	TradeName string    `json:"nome_fantasia"`
	CNPJ      string    `json:"cnpj"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email"`
	Address   string    `json:"endereco"`
	LogoURL   string    `json:"logo_url"`
	GroupID   *uint     `json:"grupo_id"`
	RegionID  *uint     `json:"regiao_id"`
	Active    bool      `json:"ativo"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FocalPointBlock
}

type CompanyListItemDTO struct {
	ID        uint   `json:"id"`
	LegalName string `json:"razao_social"`
	TradeName string `json:"nome_fantasia"`
	CNPJ      string `json:"cnpj"`
	LogoURL   string `json:"logo_url"`
	GroupID   *uint  `json:"grupo_id"`
	RegionID  *uint  `json:"regiao_id"`
	Active    bool   `json:"ativo"`
	Version   int    `json:"version"`

	FocalPointSummary focalpoint.CompactView `json:"focalPointSummary"`
}

// --------- Builders ---------

func NewFocalPointBlock(rows []models.FocalPointRow, legacy models.LegacyFocalPoint) FocalPointBlock {
	parent := focalpoint.Parent{
		FocalPoints: focalpoint.FromRows(rows),
		Legacy:      focalpoint.LegacyFromModel(legacy),
	}
	display := focalpoint.ToDisplayList(parent)

	return FocalPointBlock{
		FocalPoints: parent.FocalPoints,
		Source:      SourceName(focalpoint.Classify(parent)),
		Display:     display,
		View:        focalpoint.Expanded(display),
	}
}

func summary(rows []models.FocalPointRow, legacy models.LegacyFocalPoint) focalpoint.CompactView {
	return focalpoint.Compact(focalpoint.ToDisplayList(focalpoint.Parent{
		FocalPoints: focalpoint.FromRows(rows),
		Legacy:      focalpoint.LegacyFromModel(legacy),
	}))
}

func SourceName(src focalpoint.Source) string {
	switch src.(type) {
	case focalpoint.CollectionSource:
		return "collection"
	case focalpoint.LegacySource:
		return "legacy"
	default:
		return "empty"
	}
}

func NewGroupDetail(g models.Group, rows []models.FocalPointRow) GroupDetailDTO {
	return GroupDetailDTO{
		ID:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		Active:          g.Active,
		Version:         g.Version,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
		FocalPointBlock: NewFocalPointBlock(rows, g.Legacy),
	}
}

func NewGroupListItem(g models.Group, rows []models.FocalPointRow) GroupListItemDTO {
	return GroupListItemDTO{
		ID:                g.ID,
		Name:              g.Name,
		Description:       g.Description,
		Active:            g.Active,
		Version:           g.Version,
		FocalPointSummary: summary(rows, g.Legacy),
	}
}

func NewCompanyDetail(c models.Company, rows []models.FocalPointRow) CompanyDetailDTO {
	return CompanyDetailDTO{
		ID:              c.ID,
		LegalName:       c.LegalName,
		TradeName:       c.TradeName,
		CNPJ:            c.CNPJ,
		Phone:           c.Phone,
		Email:           c.Email,
		Address:         c.Address,
		LogoURL:         c.LogoURL,
		GroupID:         c.GroupID,
		RegionID:        c.RegionID,
		Active:          c.Active,
		Version:         c.Version,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		FocalPointBlock: NewFocalPointBlock(rows, c.Legacy),
	}
}

func NewCompanyListItem(c models.Company, rows []models.FocalPointRow) CompanyListItemDTO {
	return CompanyListItemDTO{
		ID:                c.ID,
		LegalName:         c.LegalName,
		TradeName:         c.TradeName,
		CNPJ:              c.CNPJ,
		LogoURL:           c.LogoURL,
		GroupID:           c.GroupID,
		RegionID:          c.RegionID,
		Active:            c.Active,
		Version:           c.Version,
		FocalPointSummary: summary(rows, c.Legacy),
	}
}
