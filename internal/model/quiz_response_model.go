package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizResponse holds a single quiz answer. Answer is stored raw: the
// personality quiz writes JSON-encoded values, the career quiz plain strings.
type QuizResponse struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     string    `gorm:"type:uuid;index" json:"user_id"`
	QuestionID string    `gorm:"type:varchar(100)" json:"question_id"`
	Answer     string    `gorm:"type:text" json:"answer"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

func (q *QuizResponse) TableName() string {
	return "quiz_responses"
}
