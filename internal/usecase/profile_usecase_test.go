package usecase

import (
	"errors"
	"testing"

	"career-recommender/internal/dto"
	"career-recommender/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProfileRepo struct {
	profiles map[string]*model.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*model.Profile{}}
}

func (f *fakeProfileRepo) FindByID(id string) (*model.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) UpsertResume(userID, resumeText, fileName string) error {
	if f.err != nil {
		return f.err
	}
	f.profiles[userID] = &model.Profile{ID: userID, ResumeText: resumeText, ResumeFileName: fileName}
	return nil
}

type fakeQuizRepo struct {
	byUser map[string][]model.QuizResponse
	err    error
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{byUser: map[string][]model.QuizResponse{}}
}

func (f *fakeQuizRepo) ListByUser(userID string) ([]model.QuizResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

func (f *fakeQuizRepo) Replace(userID string, responses []model.QuizResponse) error {
	if f.err != nil {
		return f.err
	}
	f.byUser[userID] = responses
	return nil
}

func TestSaveAndGetResume(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepo(), newFakeQuizRepo())

	err := uc.SaveResume("u1", dto.UpdateResumeRequest{ResumeText: "my resume", ResumeFileName: "cv.pdf"})
	require.NoError(t, err)

	resume, err := uc.GetResume("u1")
	require.NoError(t, err)
	assert.Equal(t, "my resume", resume.ResumeText)
	assert.Equal(t, "cv.pdf", resume.ResumeFileName)
}

func TestGetResumeMissingProfileIsEmpty(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepo(), newFakeQuizRepo())

	resume, err := uc.GetResume("nobody")

	require.NoError(t, err)
	assert.Empty(t, resume.ResumeText)
}

func TestSaveQuizResponsesReplacesSet(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	uc := NewProfileUsecase(newFakeProfileRepo(), quizRepo)

	err := uc.SaveQuizResponses("u1", dto.SaveQuizResponsesRequest{
		Responses: []dto.QuizAnswerInput{
			{QuestionID: "q1", Answer: "a", Score: 3},
			{QuestionID: "q2", Answer: "b", Score: 5},
		},
	})
	require.NoError(t, err)

	err = uc.SaveQuizResponses("u1", dto.SaveQuizResponsesRequest{
		Responses: []dto.QuizAnswerInput{
			{QuestionID: "q3", Answer: "c", Score: 1},
		},
	})
	require.NoError(t, err)

	responses, err := uc.GetQuizResponses("u1")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "q3", responses[0].QuestionID)
	assert.Equal(t, "u1", responses[0].UserID)
}

func TestProfileUsecaseMissingUserID(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepo(), newFakeQuizRepo())

	assert.ErrorIs(t, uc.SaveResume("", dto.UpdateResumeRequest{}), ErrMissingUserID)
	_, err := uc.GetResume("")
	assert.ErrorIs(t, err, ErrMissingUserID)
	_, err = uc.GetQuizResponses("")
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestProfileUsecaseDependencyFailures(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profileRepo.err = errors.New("connection reset")
	quizRepo := newFakeQuizRepo()
	quizRepo.err = errors.New("connection reset")
	uc := NewProfileUsecase(profileRepo, quizRepo)

	var depErr *DependencyError
	assert.ErrorAs(t, uc.SaveResume("u1", dto.UpdateResumeRequest{}), &depErr)
	_, err := uc.GetResume("u1")
	assert.ErrorAs(t, err, &depErr)
	assert.ErrorAs(t, uc.SaveQuizResponses("u1", dto.SaveQuizResponsesRequest{}), &depErr)
	_, err = uc.GetQuizResponses("u1")
	assert.ErrorAs(t, err, &depErr)
}
