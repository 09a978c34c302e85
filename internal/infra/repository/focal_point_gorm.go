package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	"github.com/BruksfildServices01/gente-api/internal/models"
)

// replaceFocalPoints apaga todas as linhas do pai e insere as novas.
// Deve rodar dentro da transação da atualização do pai.
func replaceFocalPoints(
	tx *gorm.DB,
	kind focalpoint.Kind,
	parentID uint,
	rows []models.FocalPointRow,
	userID uint,
) error {

	if err := tx.Table(kind.Table()).
		Where("parent_id = ?", parentID).
		Delete(&models.FocalPointRow{}).Error; err != nil {
		return fmt.Errorf("deleting %s focal points: %w", kind, err)
	}

	if len(rows) == 0 {
		return nil
	}

	toCreate := make([]models.FocalPointRow, len(rows))
	for i, r := range rows {
		r.ID = 0
		r.ParentID = parentID
		r.CreatedBy = userID
		r.UpdatedBy = &userID
		toCreate[i] = r
	}

	if err := tx.Table(kind.Table()).Create(&toCreate).Error; err != nil {
		return fmt.Errorf("inserting %s focal points: %w", kind, err)
	}

	return nil
}

func (r *OrganizationGormRepository) ListFocalPoints(
	ctx context.Context,
	kind focalpoint.Kind,
	parentIDs []uint,
) (map[uint][]models.FocalPointRow, error) {

	out := make(map[uint][]models.FocalPointRow, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}

	var rows []models.FocalPointRow
	if err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("parent_id IN ?", parentIDs).
		Order("parent_id ASC, ordem ASC, is_principal DESC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ParentID] = append(out[row.ParentID], row)
	}

	return out, nil
}
