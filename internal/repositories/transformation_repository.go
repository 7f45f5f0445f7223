package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"puppytime/internal/models"
)

// HistoryCap bounds the transformation history. Appending past the cap
// evicts the oldest records (FIFO by insertion, newest kept).
const HistoryCap = 50

type TransformationRepository interface {
	List(ctx context.Context) ([]models.Transformation, error)
	Append(ctx context.Context, record *models.Transformation) error
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

type transformationRepository struct {
	db *gorm.DB
}

func NewTransformationRepository(db *gorm.DB) TransformationRepository {
	return &transformationRepository{db: db}
}

func (r *transformationRepository) List(ctx context.Context) ([]models.Transformation, error) {
	var records []models.Transformation
	res := r.db.WithContext(ctx).
		Order("timestamp desc").
		Limit(HistoryCap).
		Find(&records)
	if res.Error != nil {
		return nil, res.Error
	}
	return records, nil
}

// Append inserts the record and trims everything older than the newest
// HistoryCap rows. Insert and trim run in one transaction so two pipeline
// runs finishing close together can never leave the table over the cap.
func (r *transformationRepository) Append(ctx context.Context, record *models.Transformation) error {
	if record == nil {
		return fmt.Errorf("record is required")
	}
	if record.ID == "" {
		return fmt.Errorf("record id is required")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.
			Where("id NOT IN (?)", tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.Transformation{}).
				Select("id").
				Order("timestamp desc").
				Limit(HistoryCap)).
			Delete(&models.Transformation{}).Error
	})
}

func (r *transformationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Transformation{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *transformationRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Transformation{}).Error
}
