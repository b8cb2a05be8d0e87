package repository

import (
	"errors"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	// Create inserts one attempt. A unique index violation on
	// (user_id, question_id) surfaces as domain.ErrAlreadyAnswered so two
	// racing identical submissions cannot both be stored.
	Create(attempt *model.Attempt) error
	ExistsByUserAndQuestion(userID string, questionID uint) (bool, error)
	FindAll() ([]model.Attempt, error)
	FindAllWithRefs() ([]model.Attempt, error) // eager-loads User and Question
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	if err := r.db.Create(attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyAnswered
		}
		return err
	}
	return nil
}

func (r *attemptRepository) ExistsByUserAndQuestion(userID string, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *attemptRepository) FindAll() ([]model.Attempt, error) {
	var attempts []model.Attempt
	if err := r.db.Order("created_at asc").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindAllWithRefs() ([]model.Attempt, error) {
	var attempts []model.Attempt
	if err := r.db.Preload("User").Preload("Question").Order("created_at asc").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
