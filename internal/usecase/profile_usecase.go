package usecase

import (
	"career-recommender/internal/dto"
	"career-recommender/internal/model"

	"gorm.io/gorm"
)

type ProfileRepositoryInterface interface {
	FindByID(id string) (*model.Profile, error)
	UpsertResume(userID, resumeText, fileName string) error
}

type QuizRepositoryInterface interface {
	ListByUser(userID string) ([]model.QuizResponse, error)
	Replace(userID string, responses []model.QuizResponse) error
}

// ProfileUsecase covers the collaborator data the generator reads: resume
// text and quiz responses.
type ProfileUsecase struct {
	profileRepo ProfileRepositoryInterface
	quizRepo    QuizRepositoryInterface
}

func NewProfileUsecase(profileRepo ProfileRepositoryInterface, quizRepo QuizRepositoryInterface) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo, quizRepo: quizRepo}
}

func (uc *ProfileUsecase) SaveResume(userID string, req dto.UpdateResumeRequest) error {
	if userID == "" {
		return ErrMissingUserID
	}
	if err := uc.profileRepo.UpsertResume(userID, req.ResumeText, req.ResumeFileName); err != nil {
		return &DependencyError{Op: "failed to save resume", Err: err}
	}
	return nil
}

func (uc *ProfileUsecase) GetResume(userID string) (*dto.ResumeDTO, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	profile, err := uc.profileRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &dto.ResumeDTO{}, nil
		}
		return nil, &DependencyError{Op: "failed to fetch profile", Err: err}
	}
	return &dto.ResumeDTO{
		ResumeText:     profile.ResumeText,
		ResumeFileName: profile.ResumeFileName,
		UpdatedAt:      profile.UpdatedAt,
	}, nil
}

// SaveQuizResponses replaces the user's full answer set, the same way the
// quiz UI writes it: delete everything, insert the new batch.
func (uc *ProfileUsecase) SaveQuizResponses(userID string, req dto.SaveQuizResponsesRequest) error {
	if userID == "" {
		return ErrMissingUserID
	}
	responses := make([]model.QuizResponse, 0, len(req.Responses))
	for _, in := range req.Responses {
		responses = append(responses, model.QuizResponse{
			UserID:     userID,
			QuestionID: in.QuestionID,
			Answer:     in.Answer,
			Score:      in.Score,
		})
	}
	if err := uc.quizRepo.Replace(userID, responses); err != nil {
		return &DependencyError{Op: "failed to save quiz responses", Err: err}
	}
	return nil
}

func (uc *ProfileUsecase) GetQuizResponses(userID string) ([]model.QuizResponse, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	responses, err := uc.quizRepo.ListByUser(userID)
	if err != nil {
		return nil, &DependencyError{Op: "failed to fetch quiz responses", Err: err}
	}
	return responses, nil
}
