package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"career-recommender/internal/dto"
	"career-recommender/internal/model"
	"career-recommender/internal/service"
)

const (
	SourceAIGenerated = "ai_generated"
	SourceRuleBased   = "rule_based"

	modelCallTimeout = 60 * time.Second
)

// Principal is the authenticated caller. Generation for a user is allowed to
// that user itself or to a trusted service caller.
type Principal struct {
	UserID string
	Role   string
}

const RoleService = "service"

func (p Principal) CanActFor(userID string) bool {
	return p.UserID == userID || p.Role == RoleService
}

type ProfileStoreInterface interface {
	GetResumeText(userID string) (string, error)
}

type QuizStoreInterface interface {
	ListByUser(userID string) ([]model.QuizResponse, error)
}

type RecommendationStoreInterface interface {
	ListByUserAndJobType(userID, jobType string) ([]model.CareerRecommendation, error)
	Replace(userID, jobType string, recs []model.CareerRecommendation) error
}

type GenerationResult struct {
	Recommendations []dto.CareerRecommendationDTO
	Source          string
	JobType         string
}

type RecommendationUsecase struct {
	profileStore        ProfileStoreInterface
	quizStore           QuizStoreInterface
	recommendationStore RecommendationStoreInterface
	provider            service.ModelProviderInterface

	locks sync.Map // "userID|jobType" -> *sync.Mutex
}

func NewRecommendationUsecase(
	profileStore ProfileStoreInterface,
	quizStore QuizStoreInterface,
	recommendationStore RecommendationStoreInterface,
	provider service.ModelProviderInterface,
) *RecommendationUsecase {
	return &RecommendationUsecase{
		profileStore:        profileStore,
		quizStore:           quizStore,
		recommendationStore: recommendationStore,
		provider:            provider,
	}
}

func (uc *RecommendationUsecase) lockFor(userID, jobType string) *sync.Mutex {
	v, _ := uc.locks.LoadOrStore(userID+"|"+jobType, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Generate produces and stores a fresh recommendation set for one user and
// job category, replacing whatever was stored before for that pair. Model
// failures never surface: the rule-based triplet takes over. Store failures
// do surface, since the contract is "stored and returned".
func (uc *RecommendationUsecase) Generate(ctx context.Context, principal Principal, userID, jobType string) (*GenerationResult, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if jobType == "" {
		jobType = model.JobTypeFullTime
	}
	if !model.ValidJobType(jobType) {
		return nil, ErrInvalidJobType
	}
	if !principal.CanActFor(userID) {
		return nil, ErrForbidden
	}

	// Concurrent regenerations for the same pair would interleave the
	// delete and insert, so they run one at a time.
	mu := uc.lockFor(userID, jobType)
	mu.Lock()
	defer mu.Unlock()

	resumeText, err := uc.profileStore.GetResumeText(userID)
	if err != nil {
		return nil, &DependencyError{Op: "failed to fetch profile", Err: err}
	}

	answers, err := uc.quizStore.ListByUser(userID)
	if err != nil {
		return nil, &DependencyError{Op: "failed to fetch quiz responses", Err: err}
	}

	var recommendations []dto.CareerRecommendationDTO
	source := SourceRuleBased

	if uc.provider.Configured() && (resumeText != "" || len(answers) > 0) {
		prompt := BuildPrompt(resumeText, answers, jobType)

		callCtx, cancel := context.WithTimeout(ctx, modelCallTimeout)
		raw, err := uc.provider.Complete(callCtx, systemPrompt, prompt)
		cancel()
		if err != nil {
			log.Printf("model call failed, using fallback: %v", err)
		} else {
			parsed, err := ParseRecommendations(raw)
			if err != nil {
				log.Printf("model response rejected, using fallback: %v", err)
			} else {
				recommendations = parsed
				source = SourceAIGenerated
			}
		}
	} else {
		log.Printf("skipping model call for user %s: no credential or no input data", userID)
	}

	if len(recommendations) == 0 {
		recommendations = FallbackRecommendations(jobType)
		source = SourceRuleBased
	}

	now := time.Now()
	records := make([]model.CareerRecommendation, 0, len(recommendations))
	for _, rec := range recommendations {
		skillsJSON, _ := json.Marshal(rec.Skills)
		records = append(records, model.CareerRecommendation{
			UserID:            userID,
			CareerTitle:       rec.Title,
			MatchScore:        rec.MatchScore,
			Description:       rec.Description,
			RecommendedSkills: string(skillsJSON),
			Reasoning:         rec.Reasoning,
			JobType:           jobType,
			CreatedAt:         now,
		})
	}

	if err := uc.recommendationStore.Replace(userID, jobType, records); err != nil {
		return nil, &DependencyError{Op: "failed to store recommendations", Err: err}
	}

	return &GenerationResult{
		Recommendations: recommendations,
		Source:          source,
		JobType:         jobType,
	}, nil
}

// GetStored returns the persisted set for a user and job category, highest
// match first.
func (uc *RecommendationUsecase) GetStored(principal Principal, userID, jobType string) ([]dto.StoredRecommendationDTO, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if jobType == "" {
		jobType = model.JobTypeFullTime
	}
	if !model.ValidJobType(jobType) {
		return nil, ErrInvalidJobType
	}
	if !principal.CanActFor(userID) {
		return nil, ErrForbidden
	}

	records, err := uc.recommendationStore.ListByUserAndJobType(userID, jobType)
	if err != nil {
		return nil, &DependencyError{Op: "failed to fetch recommendations", Err: err}
	}

	out := make([]dto.StoredRecommendationDTO, 0, len(records))
	for _, rec := range records {
		var skills []string
		if rec.RecommendedSkills != "" {
			if err := json.Unmarshal([]byte(rec.RecommendedSkills), &skills); err != nil {
				log.Printf("bad skills payload on recommendation %s: %v", rec.ID, err)
			}
		}
		out = append(out, dto.StoredRecommendationDTO{
			ID:          rec.ID,
			Title:       rec.CareerTitle,
			MatchScore:  rec.MatchScore,
			Description: rec.Description,
			Skills:      skills,
			Reasoning:   rec.Reasoning,
			JobType:     rec.JobType,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return out, nil
}
