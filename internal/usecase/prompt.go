package usecase

import (
	"fmt"
	"strings"

	"career-recommender/internal/model"
)

const systemPrompt = "You are a career counselor AI. Respond in strict JSON format only."

// BuildPrompt renders the instruction sent to the model provider. The
// response format is pinned down hard (bare JSON array, exactly 3 entries)
// because everything downstream assumes it.
func BuildPrompt(resumeText string, answers []model.QuizResponse, jobType string) string {
	lines := make([]string, 0, len(answers))
	for _, qa := range answers {
		lines = append(lines, fmt.Sprintf("Question %s: %s (Score: %d)", qa.QuestionID, qa.Answer, qa.Score))
	}
	quizSummary := strings.Join(lines, "\n")
	if quizSummary == "" {
		quizSummary = "No quiz responses"
	}

	if resumeText == "" {
		resumeText = "No resume provided"
	}

	jobTypeContext := "Focus on full-time career opportunities for experienced professionals or career changers."
	titleHint := ""
	descriptionHint := "and responsibilities"
	exampleTitle := "Career Title"
	if jobType == model.JobTypeInternship {
		jobTypeContext = "Focus on internship opportunities that provide learning experiences and skill development for students or recent graduates."
		titleHint = ` (include "Intern" in the title)`
		descriptionHint = "and learning opportunities"
		exampleTitle = "Career Title Intern"
	}

	return fmt.Sprintf(`You are a career counselor AI. Based on the following user data, provide exactly 3 %[1]s career recommendations in JSON format.

JOB TYPE: %[2]s
%[3]s

RESUME TEXT:
%[4]s

QUIZ RESPONSES:
%[5]s

Please respond with a valid JSON array containing exactly 3 %[1]s career recommendations.
The title should be something that is compatible with a LinkedIn search so that careers of that title can be searched up. Each recommendation should have:
- title: The job title%[6]s
- match_score: A percentage (0-100) indicating how well this career matches
- description: A brief description of the role %[7]s
- skills: An array of 3-5 relevant skills needed
- reasoning: A short explanation of why this %[1]s fits

Format your response as a JSON array only, no additional text:

[
  {
    "title": "%[8]s",
    "match_score": 85,
    "description": "Brief description of the %[1]s role %[7]s",
    "skills": ["Skill 1", "Skill 2", "Skill 3"],
    "reasoning": "Why this %[1]s matches based on resume and quiz responses"
  }
]`, jobType, strings.ToUpper(jobType), jobTypeContext, resumeText, quizSummary, titleHint, descriptionHint, exampleTitle)
}
