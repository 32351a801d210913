package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateRecommendationsRequest struct {
	UserID  string `json:"userId"`
	JobType string `json:"jobType"`
}

// CareerRecommendationDTO is the wire and in-memory form of a single
// recommendation, both as parsed from the model output and as returned
// to the caller.
type CareerRecommendationDTO struct {
	Title       string   `json:"title"`
	MatchScore  int      `json:"match_score"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Reasoning   string   `json:"reasoning"`
}

type StoredRecommendationDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	MatchScore  int       `json:"match_score"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Reasoning   string    `json:"reasoning"`
	JobType     string    `json:"job_type"`
	CreatedAt   time.Time `json:"created_at"`
}
