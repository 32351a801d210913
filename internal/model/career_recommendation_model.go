package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypeInternship = "internship"
)

type CareerRecommendation struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            string    `gorm:"type:uuid;index:idx_recommendations_user_job" json:"user_id"`
	CareerTitle       string    `gorm:"type:varchar(255)" json:"career_title"`
	MatchScore        int       `json:"match_score"`
	Description       string    `gorm:"type:text" json:"description"`
	RecommendedSkills string    `gorm:"type:jsonb" json:"recommended_skills"`
	Reasoning         string    `gorm:"type:text" json:"reasoning"`
	JobType           string    `gorm:"type:varchar(20);index:idx_recommendations_user_job" json:"job_type"`
	CreatedAt         time.Time `json:"created_at"`
}

func (r *CareerRecommendation) TableName() string {
	return "career_recommendations"
}

// ValidJobType reports whether s is one of the two supported categories.
func ValidJobType(s string) bool {
	return s == JobTypeFullTime || s == JobTypeInternship
}
