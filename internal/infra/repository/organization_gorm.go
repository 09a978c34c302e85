package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/models"
)

type OrganizationGormRepository struct {
	db *gorm.DB
}

func NewOrganizationGormRepository(db *gorm.DB) *OrganizationGormRepository {
	return &OrganizationGormRepository{db: db}
}

// --------------------------------------------------
// Regions
// --------------------------------------------------

func (r *OrganizationGormRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	if err := r.db.WithContext(ctx).
		Order("nome ASC").
		Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *OrganizationGormRepository) GetRegion(ctx context.Context, id uint) (*models.Region, error) {
	var region models.Region
	if err := r.db.WithContext(ctx).First(&region, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *OrganizationGormRepository) SaveRegion(ctx context.Context, region *models.Region) error {
	active := region.Active
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(region).Error; err != nil {
			return err
		}
		return keepInactive(tx, region, active)
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(domain.CodeDuplicateRegion)
		}
		return err
	}
	region.Active = active
	return nil
}

func (r *OrganizationGormRepository) DeleteRegion(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Region{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRegionNotFound
	}
	return nil
}

// --------------------------------------------------
// Groups
// --------------------------------------------------

func (r *OrganizationGormRepository) CreateGroup(
	ctx context.Context,
	g *models.Group,
	fps domain.FocalPointWrite,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g.Version = 1
		active := g.Active
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		if err := keepInactive(tx, g, active); err != nil {
			return err
		}
		g.Active = active

		if !fps.Replace {
			return nil
		}
		return replaceFocalPoints(tx, focalpoint.KindGroup, g.ID, fps.Rows, g.CreatedBy)
	})
}

func (r *OrganizationGormRepository) UpdateGroup(
	ctx context.Context,
	g *models.Group,
	fps domain.FocalPointWrite,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Group{}).
			Where("id = ? AND versao = ?", g.ID, g.Version).
			Updates(map[string]any{
				"nome":       g.Name,
				"descricao":  g.Description,
				"ativo":      g.Active,
				"updated_by": g.UpdatedBy,
				"versao":     g.Version + 1,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.missingOrStale(tx, &models.Group{}, g.ID, domain.ErrGroupNotFound)
		}
		g.Version++

		if !fps.Replace {
			return nil
		}
		return replaceFocalPoints(tx, focalpoint.KindGroup, g.ID, fps.Rows, updater(g.UpdatedBy, g.CreatedBy))
	})
}

func (r *OrganizationGormRepository) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	var g models.Group
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *OrganizationGormRepository) GroupVersion(ctx context.Context, id uint) (int, error) {
	return r.currentVersion(ctx, &models.Group{}, id, domain.ErrGroupNotFound)
}

func (r *OrganizationGormRepository) ListGroups(
	ctx context.Context,
	f domain.GroupFilter,
) ([]models.Group, error) {

	q := r.db.WithContext(ctx).Model(&models.Group{})

	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(descricao) LIKE ?", like, like)
	}

	if f.Active != nil {
		q = q.Where("ativo = ?", *f.Active)
	}

	var groups []models.Group
	if err := q.Order("nome ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *OrganizationGormRepository) DeleteGroup(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(focalpoint.KindGroup.Table()).
			Where("parent_id = ?", id).
			Delete(&models.FocalPointRow{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Group{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrGroupNotFound
		}
		return nil
	})
}

// --------------------------------------------------
// Companies
// --------------------------------------------------

func (r *OrganizationGormRepository) CreateCompany(
	ctx context.Context,
	c *models.Company,
	fps domain.FocalPointWrite,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c.Version = 1
		active := c.Active
		if err := tx.Create(c).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(domain.CodeDuplicateCNPJ)
			}
			return err
		}
		if err := keepInactive(tx, c, active); err != nil {
			return err
		}
		c.Active = active

		if !fps.Replace {
			return nil
		}
		return replaceFocalPoints(tx, focalpoint.KindCompany, c.ID, fps.Rows, c.CreatedBy)
	})
}

func (r *OrganizationGormRepository) UpdateCompany(
	ctx context.Context,
	c *models.Company,
	fps domain.FocalPointWrite,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Company{}).
			Where("id = ? AND versao = ?", c.ID, c.Version).
			Updates(map[string]any{
				"grupo_id":      c.GroupID,
				"regiao_id":     c.RegionID,
				"razao_social":  c.LegalName,
				"nome_fantasia": c.TradeName,
				"cnpj":          c.CNPJ,
				"telefone":      c.Phone,
				"email":         c.Email,
				"endereco":      c.Address,
				"ativo":         c.Active,
				"updated_by":    c.UpdatedBy,
				"versao":        c.Version + 1,
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			if httperr.IsUniqueViolation(res.Error) {
				return httperr.ErrBusiness(domain.CodeDuplicateCNPJ)
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.missingOrStale(tx, &models.Company{}, c.ID, domain.ErrCompanyNotFound)
		}
		c.Version++

		if !fps.Replace {
			return nil
		}
		return replaceFocalPoints(tx, focalpoint.KindCompany, c.ID, fps.Rows, updater(c.UpdatedBy, c.CreatedBy))
	})
}

func (r *OrganizationGormRepository) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	var c models.Company
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *OrganizationGormRepository) CompanyVersion(ctx context.Context, id uint) (int, error) {
	return r.currentVersion(ctx, &models.Company{}, id, domain.ErrCompanyNotFound)
}

func (r *OrganizationGormRepository) ListCompanies(
	ctx context.Context,
	f domain.CompanyFilter,
) ([]models.Company, error) {

	q := r.db.WithContext(ctx).Model(&models.Company{})

	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(razao_social) LIKE ? OR LOWER(nome_fantasia) LIKE ? OR cnpj LIKE ?",
			like, like, like,
		)
	}

	if f.GroupID != nil {
		q = q.Where("grupo_id = ?", *f.GroupID)
	}

	if f.RegionID != nil {
		q = q.Where("regiao_id = ?", *f.RegionID)
	}

	if f.Active != nil {
		q = q.Where("ativo = ?", *f.Active)
	}

	var companies []models.Company
	if err := q.Order("razao_social ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *OrganizationGormRepository) DeleteCompany(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(focalpoint.KindCompany.Table()).
			Where("parent_id = ?", id).
			Delete(&models.FocalPointRow{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Company{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCompanyNotFound
		}
		return nil
	})
}

func (r *OrganizationGormRepository) SetCompanyLogo(
	ctx context.Context,
	id uint,
	url string,
	userID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"logo_url":   url,
			"updated_by": userID,
			"versao":     gorm.Expr("versao + 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

// missingOrStale distingue "registro sumiu" de "versão mudou" após um UPDATE sem linhas.
func (r *OrganizationGormRepository) missingOrStale(
	tx *gorm.DB,
	model any,
	id uint,
	notFound error,
) error {

	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return domain.ErrStaleVersion
}

func (r *OrganizationGormRepository) currentVersion(
	ctx context.Context,
	model any,
	id uint,
	notFound error,
) (int, error) {

	var versions []int
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Pluck("versao", &versions).Error; err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, notFound
	}
	return versions[0], nil
}

// keepInactive grava ativo=false depois do INSERT, já que o gorm
// omite o zero value e o banco aplica o default true.
func keepInactive(tx *gorm.DB, model any, active bool) error {
	if active {
		return nil
	}
	return tx.Model(model).Update("ativo", false).Error
}

func updater(updatedBy *uint, createdBy uint) uint {
	if updatedBy != nil {
		return *updatedBy
	}
	return createdBy
}

// Compile-time check
var _ domain.Repository = (*OrganizationGormRepository)(nil)
