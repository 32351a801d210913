package repository

import (
	"time"

	"career-recommender/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) FindByID(id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	return &profile, err
}

// GetResumeText returns the stored resume text for a user. A missing profile
// is not an error: the user simply has no resume yet.
func (r *ProfileRepository) GetResumeText(userID string) (string, error) {
	profile, err := r.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return profile.ResumeText, nil
}

func (r *ProfileRepository) UpsertResume(userID, resumeText, fileName string) error {
	now := time.Now()
	profile := model.Profile{
		ID:             userID,
		ResumeText:     resumeText,
		ResumeFileName: fileName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"resume_text", "resume_file_name", "updated_at"}),
	}).Create(&profile).Error
}
