package repository

import (
	"github.com/naborsk/racequiz/internal/model"
	"gorm.io/gorm"
)

type TelemetryRepository interface {
	FindAll() ([]model.Telemetry, error)
	// ReplaceAll swaps the whole telemetry set inside one transaction.
	ReplaceAll(rows []model.Telemetry) error
}

type telemetryRepository struct {
	db *gorm.DB
}

func NewTelemetryRepository(db *gorm.DB) TelemetryRepository {
	return &telemetryRepository{db: db}
}

func (r *telemetryRepository) FindAll() ([]model.Telemetry, error) {
	var rows []model.Telemetry
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *telemetryRepository) ReplaceAll(rows []model.Telemetry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Telemetry{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
