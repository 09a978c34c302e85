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
)

type GroupInput struct {
	Name        string
	Description string
	Active      *bool
	FocalPoints *[]focalpoint.FocalPoint
	Version     *int
}

// ======================================================
// CREATE
// ======================================================

type CreateGroup struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateGroup(repo domain.Repository, audit *audit.Dispatcher) *CreateGroup {
	return &CreateGroup{repo: repo, audit: audit}
}

func (uc *CreateGroup) Execute(
	ctx context.Context,
	sess session.Session,
	in GroupInput,
) (*dto.GroupDetailDTO, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness(domain.CodeNameRequired)
	}

	write, err := focalPointWrite(0, in.FocalPoints)
	if err != nil {
		return nil, err
	}

	g := &models.Group{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Active:      in.Active == nil || *in.Active,
		CreatedBy:   sess.UserID,
	}

	if err := uc.repo.CreateGroup(ctx, g, write); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "group_created",
		Entity:   string(focalpoint.KindGroup),
		EntityID: &g.ID,
		Metadata: auditMeta(write),
	})

	rows, err := rowsFor(ctx, uc.repo, focalpoint.KindGroup, g.ID)
	if err != nil {
		return nil, err
	}

	out := dto.NewGroupDetail(*g, rows)
	return &out, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateGroup struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateGroup(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *UpdateGroup {
	return &UpdateGroup{repo: repo, cache: c, audit: audit}
}

func (uc *UpdateGroup) Execute(
	ctx context.Context,
	sess session.Session,
	id uint,
	in GroupInput,
) (*dto.GroupDetailDTO, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness(domain.CodeNameRequired)
	}

	g, err := uc.repo.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckVersion(in.Version, g.Version); err != nil {
		return nil, err
	}

	write, err := focalPointWrite(g.ID, in.FocalPoints)
	if err != nil {
		return nil, err
	}

	g.Name = name
	g.Description = strings.TrimSpace(in.Description)
	if in.Active != nil {
		g.Active = *in.Active
	}
	g.UpdatedBy = &sess.UserID
	previous := g.Version

	if err := uc.repo.UpdateGroup(ctx, g, write); err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, cache.GroupKey(g.ID, previous))

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "group_updated",
		Entity:   string(focalpoint.KindGroup),
		EntityID: &g.ID,
		Metadata: auditMeta(write),
	})

	rows, err := rowsFor(ctx, uc.repo, focalpoint.KindGroup, g.ID)
	if err != nil {
		return nil, err
	}

	out := dto.NewGroupDetail(*g, rows)
	return &out, nil
}

// ======================================================
// GET
// ======================================================

type GetGroup struct {
	repo  domain.Repository
	cache cache.Cache
}

func NewGetGroup(repo domain.Repository, c cache.Cache) *GetGroup {
	return &GetGroup{repo: repo, cache: c}
}

func (uc *GetGroup) Execute(ctx context.Context, id uint) (*dto.GroupDetailDTO, error) {
	version, err := uc.repo.GroupVersion(ctx, id)
	if err != nil {
		return nil, err
	}
	key := cache.GroupKey(id, version)

	var cached dto.GroupDetailDTO
	if found, err := uc.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("cache get %s: %v", key, err)
	} else if found {
		return &cached, nil
	}

	g, err := uc.repo.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := rowsFor(ctx, uc.repo, focalpoint.KindGroup, g.ID)
	if err != nil {
		return nil, err
	}

	// grava sob a versão efetivamente lida, não a consultada acima
	key = cache.GroupKey(g.ID, g.Version)
	out := dto.NewGroupDetail(*g, rows)
	if err := uc.cache.Set(ctx, key, out); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
	return &out, nil
}

// ======================================================
// LIST
// ======================================================

type ListGroups struct {
	repo domain.Repository
}

func NewListGroups(repo domain.Repository) *ListGroups {
	return &ListGroups{repo: repo}
}

func (uc *ListGroups) Execute(ctx context.Context, f domain.GroupFilter) ([]dto.GroupListItemDTO, error) {
	groups, err := uc.repo.ListGroups(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}

	byParent, err := uc.repo.ListFocalPoints(ctx, focalpoint.KindGroup, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GroupListItemDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.NewGroupListItem(g, byParent[g.ID]))
	}
	return out, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteGroup struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteGroup(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *DeleteGroup {
	return &DeleteGroup{repo: repo, cache: c, audit: audit}
}

func (uc *DeleteGroup) Execute(ctx context.Context, sess session.Session, id uint) error {
	version, err := uc.repo.GroupVersion(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteGroup(ctx, id); err != nil {
		return err
	}

	invalidate(ctx, uc.cache, cache.GroupKey(id, version))

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "group_deleted",
		Entity:   string(focalpoint.KindGroup),
		EntityID: &id,
	})
	return nil
}
