package organization

import (
	"context"
	"log"
	"strings"

	"github.com/BruksfildServices01/gente-api/internal/audit"
	"github.com/BruksfildServices01/gente-api/internal/cache"
	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/dto"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/models"
	"github.com/BruksfildServices01/gente-api/internal/session"
	"github.com/BruksfildServices01/gente-api/internal/validators"
)

type CompanyInput struct {
	LegalName   string
	TradeName   string
	CNPJ        string
	Phone       string
	Email       string
	Address     string
	GroupID     *uint
	RegionID    *uint
	Active      *bool
	FocalPoints *[]focalpoint.FocalPoint
	Version     *int
}

// companyFields valida e normaliza os campos próprios da empresa.
type companyFields struct {
	legalName string
	tradeName string
	cnpj      string
	phone     string
	email     string
	address   string
}

func validateCompany(in CompanyInput) (companyFields, error) {
	f := companyFields{
		legalName: strings.TrimSpace(in.LegalName),
		tradeName: strings.TrimSpace(in.TradeName),
		phone:     strings.TrimSpace(in.Phone),
		email:     strings.ToLower(strings.TrimSpace(in.Email)),
		address:   strings.TrimSpace(in.Address),
	}

	if f.legalName == "" {
		return f, httperr.ErrBusiness(domain.CodeNameRequired)
	}

	cnpj, err := validators.NormalizeCNPJ(in.CNPJ)
	if err != nil {
		return f, httperr.ErrBusiness(domain.CodeInvalidCNPJ)
	}
	f.cnpj = cnpj

	if err := validators.ValidatePhone(f.phone); err != nil {
		return f, httperr.ErrBusiness(domain.CodeInvalidPhone)
	}
	if err := validators.ValidateEmail(f.email); err != nil {
		return f, httperr.ErrBusiness(domain.CodeInvalidEmail)
	}

	return f, nil
}

// checkRefs garante que grupo e região informados existem.
func checkRefs(ctx context.Context, repo domain.Repository, groupID, regionID *uint) error {
	if groupID != nil {
		if _, err := repo.GetGroup(ctx, *groupID); err != nil {
			return err
		}
	}
	if regionID != nil {
		if _, err := repo.GetRegion(ctx, *regionID); err != nil {
			return err
		}
	}
	return nil
}

// ======================================================
// CREATE
// ======================================================

type CreateCompany struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCompany(repo domain.Repository, audit *audit.Dispatcher) *CreateCompany {
	return &CreateCompany{repo: repo, audit: audit}
}

func (uc *CreateCompany) Execute(
	ctx context.Context,
	sess session.Session,
	in CompanyInput,
) (*dto.CompanyDetailDTO, error) {

	f, err := validateCompany(in)
	if err != nil {
		return nil, err
	}

	if err := checkRefs(ctx, uc.repo, in.GroupID, in.RegionID); err != nil {
		return nil, err
	}

	write, err := focalPointWrite(0, in.FocalPoints)
	if err != nil {
		return nil, err
	}

	c := &models.Company{
		GroupID:   in.GroupID,
		RegionID:  in.RegionID,
		LegalName: f.legalName,
		TradeName: f.tradeName,
		CNPJ:      f.cnpj,
		Phone:     f.phone,
		Email:     f.email,
		Address:   f.address,
		Active:    in.Active == nil || *in.Active,
		CreatedBy: sess.UserID,
	}

	if err := uc.repo.CreateCompany(ctx, c, write); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "company_created",
		Entity:   string(focalpoint.KindCompany),
		EntityID: &c.ID,
		Metadata: auditMeta(write),
	})

	rows, err := rowsFor(ctx, uc.repo, focalpoint.KindCompany, c.ID)
	if err != nil {
		return nil, err
	}

	out := dto.NewCompanyDetail(*c, rows)
	return &out, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateCompany struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateCompany(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *UpdateCompany {
	return &UpdateCompany{repo: repo, cache: c, audit: audit}
}

func (uc *UpdateCompany) Execute(
	ctx context.Context,
	sess session.Session,
	id uint,
	in CompanyInput,
) (*dto.CompanyDetailDTO, error) {

	f, err := validateCompany(in)
	if err != nil {
		return nil, err
	}

	c, err := uc.repo.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckVersion(in.Version, c.Version); err != nil {
		return nil, err
	}

	if err := checkRefs(ctx, uc.repo, in.GroupID, in.RegionID); err != nil {
		return nil, err
	}

	write, err := focalPointWrite(c.ID, in.FocalPoints)
	if err != nil {
		return nil, err
	}

	c.GroupID = in.GroupID
	c.RegionID = in.RegionID
	c.LegalName = f.legalName
	c.TradeName = f.tradeName
	c.CNPJ = f.cnpj
	c.Phone = f.phone
	c.Email = f.email
	c.Address = f.address
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedBy = &sess.UserID
	previous := c.Version

	if err := uc.repo.UpdateCompany(ctx, c, write); err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, cache.CompanyKey(c.ID, previous))

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "company_updated",
		Entity:   string(focalpoint.KindCompany),
		EntityID: &c.ID,
		Metadata: auditMeta(write),
	})

	rows, err := rowsFor(ctx, uc.repo, focalpoint.KindCompany, c.ID)
	if err != nil {
		return nil, err
	}

	out := dto.NewCompanyDetail(*c, rows)
	return &out, nil
}

// ======================================================
// GET
// ======================================================

type GetCompany struct {
	repo  domain.Repository
	cache cache.Cache
}

func NewGetCompany(repo domain.Repository, c cache.Cache) *GetCompany {
	return &GetCompany{repo: repo, cache: c}
}

func (uc *GetCompany) Execute(ctx context.Context, id uint) (*dto.CompanyDetailDTO, error) {
	version, err := uc.repo.CompanyVersion(ctx, id)
	if err != nil {
		return nil, err
	}
	key := cache.CompanyKey(id, version)

	var cached dto.CompanyDetailDTO
	if found, err := uc.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("cache get %s: %v", key, err)
	} else if found {
		return &cached, nil
	}

	c, err := uc.repo.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := rowsFor(ctx, uc.repo, focalpoint.KindCompany, c.ID)
	if err != nil {
		return nil, err
	}

	key = cache.CompanyKey(c.ID, c.Version)
	out := dto.NewCompanyDetail(*c, rows)
	if err := uc.cache.Set(ctx, key, out); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
	return &out, nil
}

// ======================================================
// LIST
// ======================================================

type ListCompanies struct {
	repo domain.Repository
}

func NewListCompanies(repo domain.Repository) *ListCompanies {
	return &ListCompanies{repo: repo}
}

func (uc *ListCompanies) Execute(ctx context.Context, f domain.CompanyFilter) ([]dto.CompanyListItemDTO, error) {
	companies, err := uc.repo.ListCompanies(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(companies))
	for i, c := range companies {
		ids[i] = c.ID
	}

	byParent, err := uc.repo.ListFocalPoints(ctx, focalpoint.KindCompany, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CompanyListItemDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.NewCompanyListItem(c, byParent[c.ID]))
	}
	return out, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteCompany struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteCompany(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *DeleteCompany {
	return &DeleteCompany{repo: repo, cache: c, audit: audit}
}

func (uc *DeleteCompany) Execute(ctx context.Context, sess session.Session, id uint) error {
	version, err := uc.repo.CompanyVersion(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteCompany(ctx, id); err != nil {
		return err
	}

	invalidate(ctx, uc.cache, cache.CompanyKey(id, version))

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "company_deleted",
		Entity:   string(focalpoint.KindCompany),
		EntityID: &id,
	})
	return nil
}
