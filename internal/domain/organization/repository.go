package organization

import (
	"context"

	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	"github.com/BruksfildServices01/gente-api/internal/models"
)

type GroupFilter struct {
	Query  string
	Active *bool
}

type CompanyFilter struct {
	Query    string
	GroupID  *uint
	RegionID *uint
	Active   *bool
}

// FocalPointWrite diz se a coleção deve ser substituída junto com o pai.
// Replace=false mantém as linhas atuais intactas.
type FocalPointWrite struct {
	Replace bool
	Rows    []models.FocalPointRow
}

type Repository interface {
	// -------- Regions --------
	ListRegions(ctx context.Context) ([]models.Region, error)
	GetRegion(ctx context.Context, id uint) (*models.Region, error)
	SaveRegion(ctx context.Context, r *models.Region) error
	DeleteRegion(ctx context.Context, id uint) error

	// -------- Groups --------
	CreateGroup(
		ctx context.Context,
		g *models.Group,
		fps FocalPointWrite,
	) error

	// UpdateGroup grava só se a versão no banco ainda for g.Version;
	// caso contrário devolve o erro de negócio stale_version.
	UpdateGroup(
		ctx context.Context,
		g *models.Group,
		fps FocalPointWrite,
	) error

	GetGroup(ctx context.Context, id uint) (*models.Group, error)
	// GroupVersion lê só a coluna versao.
	GroupVersion(ctx context.Context, id uint) (int, error)
	ListGroups(ctx context.Context, f GroupFilter) ([]models.Group, error)
	DeleteGroup(ctx context.Context, id uint) error

	// -------- Companies --------
	CreateCompany(
		ctx context.Context,
		c *models.Company,
		fps FocalPointWrite,
	) error

	UpdateCompany(
		ctx context.Context,
		c *models.Company,
		fps FocalPointWrite,
	) error

	GetCompany(ctx context.Context, id uint) (*models.Company, error)
	CompanyVersion(ctx context.Context, id uint) (int, error)
	ListCompanies(ctx context.Context, f CompanyFilter) ([]models.Company, error)
	DeleteCompany(ctx context.Context, id uint) error
	// SetCompanyLogo também incrementa a versao da empresa.
	SetCompanyLogo(ctx context.Context, id uint, url string, userID uint) error

	// -------- Focal points --------
	ListFocalPoints(
		ctx context.Context,
		kind focalpoint.Kind,
		parentIDs []uint,
	) (map[uint][]models.FocalPointRow, error)
}
