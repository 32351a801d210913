package usecase

import (
	"testing"

	"career-recommender/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRecommendationsShape(t *testing.T) {
	for _, jobType := range []string{model.JobTypeFullTime, model.JobTypeInternship} {
		recs := FallbackRecommendations(jobType)
		require.Len(t, recs, 3, "jobType %s", jobType)
		for _, rec := range recs {
			assert.NotEmpty(t, rec.Title)
			assert.NotEmpty(t, rec.Description)
			assert.NotEmpty(t, rec.Reasoning)
			assert.NotEmpty(t, rec.Skills)
			assert.GreaterOrEqual(t, rec.MatchScore, 0)
			assert.LessOrEqual(t, rec.MatchScore, 100)
		}
	}
}

func TestFallbackInternshipTitlesContainIntern(t *testing.T) {
	for _, rec := range FallbackRecommendations(model.JobTypeInternship) {
		assert.Contains(t, rec.Title, "Intern")
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	assert.Equal(t, FallbackRecommendations(model.JobTypeFullTime), FallbackRecommendations(model.JobTypeFullTime))
	assert.Equal(t, FallbackRecommendations(model.JobTypeInternship), FallbackRecommendations(model.JobTypeInternship))
	assert.NotEqual(t, FallbackRecommendations(model.JobTypeFullTime), FallbackRecommendations(model.JobTypeInternship))
}
