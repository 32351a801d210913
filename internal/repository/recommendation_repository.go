package repository

import (
	"career-recommender/internal/model"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db}
}

func (r *RecommendationRepository) ListByUserAndJobType(userID, jobType string) ([]model.CareerRecommendation, error) {
	var recs []model.CareerRecommendation
	err := r.db.
		Order("match_score DESC").
		Find(&recs, "user_id = ? AND job_type = ?", userID, jobType).Error
	return recs, err
}

// Replace removes the stored set for (user, job type) and inserts the new one
// as a single transaction, so readers never observe a partial set.
func (r *RecommendationRepository) Replace(userID, jobType string, recs []model.CareerRecommendation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Delete(&model.CareerRecommendation{}, "user_id = ? AND job_type = ?", userID, jobType).Error
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.Create(&recs).Error
	})
}
