package organization

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/gente-api/internal/audit"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/models"
	"github.com/BruksfildServices01/gente-api/internal/session"
)

const regionEntity = "regiao"

type RegionInput struct {
	Name        string
	Description string
	Active      *bool
}

type Regions struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegions(repo domain.Repository, audit *audit.Dispatcher) *Regions {
	return &Regions{repo: repo, audit: audit}
}

func (uc *Regions) List(ctx context.Context) ([]models.Region, error) {
	return uc.repo.ListRegions(ctx)
}

func (uc *Regions) Create(ctx context.Context, sess session.Session, in RegionInput) (*models.Region, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness(domain.CodeNameRequired)
	}

	r := &models.Region{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Active:      in.Active == nil || *in.Active,
	}
	if err := uc.repo.SaveRegion(ctx, r); err != nil {
		return nil, err
	}

	uc.dispatch(sess, "region_created", r.ID)
	return r, nil
}

func (uc *Regions) Update(ctx context.Context, sess session.Session, id uint, in RegionInput) (*models.Region, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness(domain.CodeNameRequired)
	}

	r, err := uc.repo.GetRegion(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Name = name
	r.Description = strings.TrimSpace(in.Description)
	if in.Active != nil {
		r.Active = *in.Active
	}

	if err := uc.repo.SaveRegion(ctx, r); err != nil {
		return nil, err
	}

	uc.dispatch(sess, "region_updated", r.ID)
	return r, nil
}

func (uc *Regions) Delete(ctx context.Context, sess session.Session, id uint) error {
	if err := uc.repo.DeleteRegion(ctx, id); err != nil {
		return err
	}
	uc.dispatch(sess, "region_deleted", id)
	return nil
}

func (uc *Regions) dispatch(sess session.Session, action string, id uint) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   action,
		Entity:   regionEntity,
		EntityID: &id,
	})
}
