package organization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gente-api/internal/cache"
	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
)

func validCompany() CompanyInput {
	return CompanyInput{
		LegalName: "Acme Serviços LTDA",
		CNPJ:      "11.222.333/0001-81",
		Phone:     "(11) 98765-4321",
		Email:     " Contato@Acme.com.br ",
	}
}

func TestCreateCompanyNormalizes(t *testing.T) {
	repo := newFakeRepo()
	d, _ := newAudit()

	in := validCompany()
	in.FocalPoints = fps(focalpoint.FocalPoint{Name: "Ana", Phone: "11987654321", Email: "ana@acme.com"})

	out, err := NewCreateCompany(repo, d).Execute(context.Background(), operator, in)
	require.NoError(t, err)

	assert.Equal(t, "11222333000181", out.CNPJ)
	assert.Equal(t, "contato@acme.com.br", out.Email)
	require.Len(t, out.FocalPoints, 1)
	assert.True(t, out.FocalPoints[0].IsPrincipal)
	assert.Equal(t, "11987654321", out.FocalPoints[0].Phone)
}

func TestCreateCompanyValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CompanyInput)
		code   string
	}{
		{"sem razao social", func(in *CompanyInput) { in.LegalName = " " }, domain.CodeNameRequired},
		{"cnpj invalido", func(in *CompanyInput) { in.CNPJ = "11222333000182" }, domain.CodeInvalidCNPJ},
		{"telefone invalido", func(in *CompanyInput) { in.Phone = "11899999999" }, domain.CodeInvalidPhone},
		{"email invalido", func(in *CompanyInput) { in.Email = "contato@acme" }, domain.CodeInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			d, _ := newAudit()

			in := validCompany()
			tt.mutate(&in)

			_, err := NewCreateCompany(repo, d).Execute(context.Background(), operator, in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
			assert.Empty(t, repo.companies)
		})
	}
}

func TestCreateCompanyUnknownRefs(t *testing.T) {
	d, _ := newAudit()

	in := validCompany()
	missing := uint(77)
	in.RegionID = &missing

	_, err := NewCreateCompany(newFakeRepo(), d).Execute(context.Background(), operator, in)
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)

	in = validCompany()
	in.GroupID = &missing
	_, err = NewCreateCompany(newFakeRepo(), d).Execute(context.Background(), operator, in)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestUpdateCompanyReplacesFocalPoints(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	mem := newMemCache()
	d, events := newAudit()

	in := validCompany()
	in.FocalPoints = fps(focalpoint.FocalPoint{Name: "Ana"}, focalpoint.FocalPoint{Name: "Bia"})
	created, err := NewCreateCompany(repo, d).Execute(ctx, operator, in)
	require.NoError(t, err)

	_, err = NewGetCompany(repo, mem).Execute(ctx, created.ID)
	require.NoError(t, err)
	require.Contains(t, mem.data, cache.CompanyKey(created.ID, 1))

	// cliente remove a principal (Ana) e mantém Bia com o id persistido
	bia := created.FocalPoints[1]
	in = validCompany()
	in.Version = intPtr(created.Version)
	in.FocalPoints = fps(bia)

	out, err := NewUpdateCompany(repo, mem, d).Execute(ctx, operator, created.ID, in)
	require.NoError(t, err)

	require.Len(t, out.FocalPoints, 1)
	assert.Equal(t, "Bia", out.FocalPoints[0].Name)
	assert.True(t, out.FocalPoints[0].IsPrincipal)
	assert.Equal(t, 2, out.Version)
	assert.NotContains(t, mem.data, cache.CompanyKey(created.ID, 1))

	_, err = NewUpdateCompany(repo, mem, d).Execute(ctx, operator, created.ID, in)
	assert.ErrorIs(t, err, domain.ErrStaleVersion)

	ev := events()
	require.Len(t, ev, 2)
	assert.Equal(t, "company_updated", ev[1].Action)
	assert.Equal(t, map[string]any{"pontos_focais": 1}, ev[1].Metadata)
}

func TestUpdateCompanyRevalidatesFocalPointContacts(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	d, _ := newAudit()

	created, err := NewCreateCompany(repo, d).Execute(ctx, operator, validCompany())
	require.NoError(t, err)

	in := validCompany()
	in.FocalPoints = fps(focalpoint.FocalPoint{Name: "Ana", Phone: "00999999999"})

	_, err = NewUpdateCompany(repo, cache.Noop{}, d).Execute(ctx, operator, created.ID, in)
	var verr *focalpoint.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, focalpoint.FieldPhone, verr.Fields[0].Field)

	stored, err := repo.GetCompany(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Version)
}

func TestListAndDeleteCompanies(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	d, _ := newAudit()

	created, err := NewCreateCompany(repo, d).Execute(ctx, operator, validCompany())
	require.NoError(t, err)

	list, err := NewListCompanies(repo).Execute(ctx, domain.CompanyFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, focalpoint.Placeholder, list[0].FocalPointSummary.Placeholder)

	require.NoError(t, NewDeleteCompany(repo, cache.Noop{}, d).Execute(ctx, operator, created.ID))
	_, err = NewGetCompany(repo, cache.Noop{}).Execute(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}
