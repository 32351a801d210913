package usecase

import (
	"strings"
	"testing"

	"career-recommender/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsResumeAndQuiz(t *testing.T) {
	answers := []model.QuizResponse{
		{QuestionID: "skill_interests", Answer: `["coding","design"]`, Score: 8},
		{QuestionID: "work_style", Answer: "independent", Score: 5},
	}

	prompt := BuildPrompt("Experienced backend engineer.", answers, model.JobTypeFullTime)

	assert.Contains(t, prompt, "Experienced backend engineer.")
	assert.Contains(t, prompt, `Question skill_interests: ["coding","design"] (Score: 8)`)
	assert.Contains(t, prompt, "Question work_style: independent (Score: 5)")
	assert.Contains(t, prompt, "exactly 3 full-time career recommendations")
	assert.Contains(t, prompt, "JOB TYPE: FULL-TIME")
	assert.Contains(t, prompt, "full-time career opportunities for experienced professionals")
	assert.NotContains(t, prompt, "No resume provided")
	assert.NotContains(t, prompt, "No quiz responses")
}

func TestBuildPromptPlaceholders(t *testing.T) {
	prompt := BuildPrompt("", nil, model.JobTypeFullTime)

	assert.Contains(t, prompt, "No resume provided")
	assert.Contains(t, prompt, "No quiz responses")
}

func TestBuildPromptInternshipFraming(t *testing.T) {
	prompt := BuildPrompt("Student resume", nil, model.JobTypeInternship)

	assert.Contains(t, prompt, "JOB TYPE: INTERNSHIP")
	assert.Contains(t, prompt, `include "Intern" in the title`)
	assert.Contains(t, prompt, "learning experiences and skill development")
	assert.Contains(t, prompt, "Career Title Intern")
	assert.Contains(t, prompt, "learning opportunities")
}

func TestBuildPromptRequestsBareJSONArray(t *testing.T) {
	prompt := BuildPrompt("anything", nil, model.JobTypeFullTime)

	assert.Contains(t, prompt, "Format your response as a JSON array only, no additional text")
	for _, field := range []string{"title", "match_score", "description", "skills", "reasoning"} {
		assert.True(t, strings.Contains(prompt, field), "prompt should mention field %q", field)
	}
}
