package organization

import (
	"context"
	"log"

	"github.com/BruksfildServices01/gente-api/internal/cache"
	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/models"
)

// focalPointWrite roda o gate sobre a coleção recebida. Coleção ausente
// (nil) não mexe nas linhas gravadas.
func focalPointWrite(parentID uint, items *[]focalpoint.FocalPoint) (domain.FocalPointWrite, error) {
	if items == nil {
		return domain.FocalPointWrite{}, nil
	}

	normalized, err := focalpoint.Gate(*items)
	if err != nil {
		return domain.FocalPointWrite{}, err
	}

	return domain.FocalPointWrite{
		Replace: true,
		Rows:    focalpoint.ToRows(parentID, normalized),
	}, nil
}

func rowsFor(
	ctx context.Context,
	repo domain.Repository,
	kind focalpoint.Kind,
	parentID uint,
) ([]models.FocalPointRow, error) {

	byParent, err := repo.ListFocalPoints(ctx, kind, []uint{parentID})
	if err != nil {
		return nil, err
	}
	return byParent[parentID], nil
}

func invalidate(ctx context.Context, c cache.Cache, key string) {
	if err := c.Delete(ctx, key); err != nil {
		log.Printf("cache delete %s: %v", key, err)
	}
}

func auditMeta(write domain.FocalPointWrite) any {
	if !write.Replace {
		return nil
	}
	return map[string]any{"pontos_focais": len(write.Rows)}
}
