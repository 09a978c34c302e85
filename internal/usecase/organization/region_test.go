package organization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
)

func TestRegions(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	d, events := newAudit()
	uc := NewRegions(repo, d)

	_, err := uc.Create(ctx, operator, RegionInput{Name: " "})
	assert.True(t, httperr.IsBusiness(err, domain.CodeNameRequired))

	r, err := uc.Create(ctx, operator, RegionInput{Name: "Sudeste"})
	require.NoError(t, err)
	assert.True(t, r.Active)

	inactive := false
	r, err = uc.Update(ctx, operator, r.ID, RegionInput{Name: "Sudeste", Active: &inactive})
	require.NoError(t, err)
	assert.False(t, r.Active)

	_, err = uc.Update(ctx, operator, 999, RegionInput{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, operator, r.ID))
	assert.ErrorIs(t, uc.Delete(ctx, operator, r.ID), domain.ErrRegionNotFound)

	ev := events()
	require.Len(t, ev, 3)
	assert.Equal(t, "region_deleted", ev[2].Action)
}
