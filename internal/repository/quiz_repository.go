package repository

import (
	"career-recommender/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db}
}

func (r *QuizRepository) ListByUser(userID string) ([]model.QuizResponse, error) {
	var responses []model.QuizResponse
	err := r.db.Find(&responses, "user_id = ?", userID).Error
	return responses, err
}

// Replace swaps out all quiz responses for a user in one transaction.
func (r *QuizRepository) Replace(userID string, responses []model.QuizResponse) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.QuizResponse{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if len(responses) == 0 {
			return nil
		}
		return tx.Create(&responses).Error
	})
}
