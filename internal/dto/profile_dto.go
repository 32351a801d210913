package dto

import "time"

type UpdateResumeRequest struct {
	ResumeText     string `json:"resumeText"`
	ResumeFileName string `json:"resumeFileName"`
}

type ResumeDTO struct {
	ResumeText     string    `json:"resume_text"`
	ResumeFileName string    `json:"resume_file_name"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type QuizAnswerInput struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
}

type SaveQuizResponsesRequest struct {
	Responses []QuizAnswerInput `json:"responses"`
}
