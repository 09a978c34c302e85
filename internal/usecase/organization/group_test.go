package organization

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gente-api/internal/cache"
	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/models"
	"github.com/BruksfildServices01/gente-api/internal/session"
)

var operator = session.Session{UserID: 10, Role: session.RoleOperator}

func fps(items ...focalpoint.FocalPoint) *[]focalpoint.FocalPoint {
	return &items
}

func intPtr(v int) *int { return &v }

func TestCreateGroupNormalizesFocalPoints(t *testing.T) {
	repo := newFakeRepo()
	d, events := newAudit()

	out, err := NewCreateGroup(repo, d).Execute(context.Background(), operator, GroupInput{
		Name: "  Grupo Alfa ",
		FocalPoints: fps(
			focalpoint.FocalPoint{ID: "tmp-1", Name: "Ana", DisplayOrder: 7},
			focalpoint.FocalPoint{ID: "tmp-2", Name: "Bruno", IsPrincipal: true, DisplayOrder: 3},
			focalpoint.FocalPoint{ID: "tmp-3", Name: "Carla", IsPrincipal: true},
		),
	})
	require.NoError(t, err)

	assert.Equal(t, "Grupo Alfa", out.Name)
	assert.True(t, out.Active)
	assert.Equal(t, 1, out.Version)
	assert.Equal(t, "collection", out.Source)

	rows := repo.fps[focalpoint.KindGroup][out.ID]
	require.Len(t, rows, 3)
	principals := 0
	for i, r := range rows {
		assert.Equal(t, i, r.Order)
		if r.IsPrincipal {
			principals++
			assert.Equal(t, "Bruno", r.Name)
		}
	}
	assert.Equal(t, 1, principals)

	require.Len(t, out.Display, 3)
	assert.Equal(t, "Bruno", out.Display[0].Name)

	ev := events()
	require.Len(t, ev, 1)
	assert.Equal(t, "group_created", ev[0].Action)
	assert.Equal(t, uint(10), *ev[0].UserID)
}

func TestCreateGroupRejectsInvalidFocalPoints(t *testing.T) {
	repo := newFakeRepo()
	d, _ := newAudit()

	_, err := NewCreateGroup(repo, d).Execute(context.Background(), operator, GroupInput{
		Name: "Grupo",
		FocalPoints: fps(
			focalpoint.FocalPoint{ID: "a", Name: "", Phone: "123"},
			focalpoint.FocalPoint{ID: "b", Name: "Bia", Email: "bia@"},
		),
	})

	var verr *focalpoint.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Empty(t, repo.groups)
}

func TestCreateGroupRequiresName(t *testing.T) {
	d, _ := newAudit()
	_, err := NewCreateGroup(newFakeRepo(), d).Execute(context.Background(), operator, GroupInput{Name: "  "})
	assert.True(t, httperr.IsBusiness(err, domain.CodeNameRequired))
}

func TestUpdateGroupWithoutFocalPointsKeepsRows(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	d, _ := newAudit()

	created, err := NewCreateGroup(repo, d).Execute(ctx, operator, GroupInput{
		Name:        "Grupo",
		FocalPoints: fps(focalpoint.FocalPoint{Name: "Ana"}),
	})
	require.NoError(t, err)

	out, err := NewUpdateGroup(repo, cache.Noop{}, d).Execute(ctx, operator, created.ID, GroupInput{Name: "Grupo 2"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Version)
	require.Len(t, out.FocalPoints, 1)
	assert.False(t, repo.writes[len(repo.writes)-1].Replace)
}

func TestUpdateGroupEmptyListClearsRows(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	d, _ := newAudit()

	created, err := NewCreateGroup(repo, d).Execute(ctx, operator, GroupInput{
		Name:        "Grupo",
		FocalPoints: fps(focalpoint.FocalPoint{Name: "Ana"}),
	})
	require.NoError(t, err)

	out, err := NewUpdateGroup(repo, cache.Noop{}, d).Execute(ctx, operator, created.ID, GroupInput{
		Name:        "Grupo",
		FocalPoints: fps(),
	})
	require.NoError(t, err)
	assert.Empty(t, out.FocalPoints)
	assert.Equal(t, "empty", out.Source)
}

func TestUpdateGroupStaleVersion(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	d, _ := newAudit()

	created, err := NewCreateGroup(repo, d).Execute(ctx, operator, GroupInput{Name: "Grupo"})
	require.NoError(t, err)

	update := NewUpdateGroup(repo, cache.Noop{}, d)

	_, err = update.Execute(ctx, operator, created.ID, GroupInput{Name: "A", Version: intPtr(1)})
	require.NoError(t, err)

	_, err = update.Execute(ctx, operator, created.ID, GroupInput{Name: "B", Version: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrStaleVersion)

	// sem versão: última gravação vence
	out, err := update.Execute(ctx, operator, created.ID, GroupInput{Name: "C"})
	require.NoError(t, err)
	assert.Equal(t, "C", out.Name)
	assert.Equal(t, 3, out.Version)
}

func TestGetGroupReadThroughAndInvalidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	mem := newMemCache()
	d, _ := newAudit()

	name := "Legado"
	repo.groups[1] = models.Group{ID: 1, Name: "G", Version: 1, Legacy: models.LegacyFocalPoint{Name: &name}}
	repo.nextID = 1

	get := NewGetGroup(repo, mem)

	out, err := get.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "legacy", out.Source)
	assert.Contains(t, mem.data, cache.GroupKey(1, 1))

	// o cache responde mesmo que o banco mude por fora
	g := repo.groups[1]
	g.Name = "Alterado"
	repo.groups[1] = g
	out, err = get.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "G", out.Name)

	_, err = NewUpdateGroup(repo, mem, d).Execute(ctx, operator, 1, GroupInput{Name: "Novo"})
	require.NoError(t, err)
	assert.NotContains(t, mem.data, cache.GroupKey(1, 1))

	out, err = get.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Novo", out.Name)

	_, err = get.Execute(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestGetGroupConcurrentUpdateDoesNotPinStaleDocument(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	mem := newMemCache()
	d, _ := newAudit()

	created, err := NewCreateGroup(repo, d).Execute(ctx, operator, GroupInput{
		Name:        "Antigo",
		FocalPoints: fps(focalpoint.FocalPoint{Name: "Ana"}),
	})
	require.NoError(t, err)

	get := NewGetGroup(repo, mem)
	update := NewUpdateGroup(repo, mem, d)

	// o Get já leu a linha (versao 1) quando o Update confirma e invalida
	repo.beforeListFocalPoints = func() {
		_, err := update.Execute(ctx, operator, created.ID, GroupInput{
			Name:        "Novo",
			FocalPoints: fps(focalpoint.FocalPoint{Name: "Bia"}),
		})
		require.NoError(t, err)
	}
	_, err = get.Execute(ctx, created.ID)
	require.NoError(t, err)

	out, err := get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novo", out.Name)
	assert.Equal(t, 2, out.Version)
	require.Len(t, out.FocalPoints, 1)
	assert.Equal(t, "Bia", out.FocalPoints[0].Name)
}

func TestListGroupsSummaries(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	d, _ := newAudit()
	create := NewCreateGroup(repo, d)

	_, err := create.Execute(ctx, operator, GroupInput{
		Name:        "Com pontos",
		FocalPoints: fps(focalpoint.FocalPoint{Name: "Ana"}, focalpoint.FocalPoint{Name: "Bia", IsPrincipal: true}),
	})
	require.NoError(t, err)
	_, err = create.Execute(ctx, operator, GroupInput{Name: "Vazio"})
	require.NoError(t, err)

	list, err := NewListGroups(repo).Execute(ctx, domain.GroupFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Bia", list[0].FocalPointSummary.Name)
	assert.Equal(t, "+1", list[0].FocalPointSummary.Badge)
	assert.True(t, list[1].FocalPointSummary.Empty)
}

func TestDeleteGroup(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	mem := newMemCache()
	d, events := newAudit()

	created, err := NewCreateGroup(repo, d).Execute(ctx, operator, GroupInput{Name: "G"})
	require.NoError(t, err)

	del := NewDeleteGroup(repo, mem, d)
	require.NoError(t, del.Execute(ctx, operator, created.ID))
	assert.ErrorIs(t, del.Execute(ctx, operator, created.ID), domain.ErrGroupNotFound)
	assert.Contains(t, mem.deleted, cache.GroupKey(created.ID, 1))

	ev := events()
	require.Len(t, ev, 2)
	assert.Equal(t, "group_deleted", ev[1].Action)
}
