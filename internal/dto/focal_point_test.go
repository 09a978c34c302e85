package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gente-api/internal/models"
)

func TestFocalPointPayloadKeyVariants(t *testing.T) {
	body := `{
		"nome": "Órion",
		"focalPoints": [
			{"id": 12, "name": "Ana", "isPrincipal": false, "displayOrder": 3},
			{"id": "tmp-1-abc", "nome": "Bruno", "cargo": "RH", "telefone": "11987654321", "is_principal": true, "ordem": 1},
			{"name": "Carla", "display_order": 2, "observacoes": "noite"}
		]
	}`

	var req GroupRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NotNil(t, req.FocalPoints)

	list := *FocalPointList(req.FocalPoints)
	require.Len(t, list, 3)

	assert.Equal(t, "12", list[0].ID)
	assert.False(t, list[0].IsPrincipal)
	assert.Equal(t, 3, list[0].DisplayOrder)

	assert.Equal(t, "tmp-1-abc", list[1].ID)
	assert.Equal(t, "Bruno", list[1].Name)
	assert.Equal(t, "RH", list[1].Role)
	assert.Equal(t, "11987654321", list[1].Phone)
	assert.True(t, list[1].IsPrincipal)
	assert.Equal(t, 1, list[1].DisplayOrder)

	assert.Empty(t, list[2].ID)
	assert.Equal(t, 2, list[2].DisplayOrder)
	assert.Equal(t, "noite", list[2].Notes)
}

func TestFocalPointsAbsentVersusEmpty(t *testing.T) {
	var absent GroupRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"G"}`), &absent))
	assert.Nil(t, FocalPointList(absent.FocalPoints))

	var empty GroupRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"G","focalPoints":[]}`), &empty))
	got := FocalPointList(empty.FocalPoints)
	require.NotNil(t, got)
	assert.Empty(t, *got)
}

func TestNewGroupDetailFallsBackToLegacy(t *testing.T) {
	name := "Maria Legada"
	g := models.Group{ID: 1, Name: "G", Legacy: models.LegacyFocalPoint{Name: &name, IsPrincipal: true}}

	d := NewGroupDetail(g, nil)
	assert.Equal(t, "legacy", d.Source)
	assert.Empty(t, d.FocalPoints)
	require.Len(t, d.Display, 1)
	assert.Equal(t, "Maria Legada", d.Display[0].Name)
	require.Len(t, d.View.Entries, 1)

	item := NewGroupListItem(g, []models.FocalPointRow{{ID: 9, Name: "Nova", IsPrincipal: true}})
	assert.Equal(t, "Nova", item.FocalPointSummary.Name)
	assert.Equal(t, 1, item.FocalPointSummary.Count)
}

func TestNewCompanyDetailEmpty(t *testing.T) {
	d := NewCompanyDetail(models.Company{ID: 2, CNPJ: "11222333000181"}, nil)
	assert.Equal(t, "empty", d.Source)
	assert.True(t, d.View.Empty)
	assert.NotNil(t, d.Display)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"focalPointSource":"empty"`)
	assert.Contains(t, string(raw), `"displayFocalPoints":[]`)
}
