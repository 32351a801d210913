package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"career-recommender/internal/dto"

	"github.com/xeipuuv/gojsonschema"
)

// Structural schema for the model output. Scores outside 0-100 and skill
// lists longer than 5 are accepted as-is; the prompt asks for those bounds
// but the stored data does not enforce them.
const recommendationSchemaJSON = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["title", "match_score", "description", "skills", "reasoning"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"match_score": {"type": "integer"},
			"description": {"type": "string"},
			"skills": {"type": "array", "minItems": 1, "items": {"type": "string"}},
			"reasoning": {"type": "string"}
		}
	}
}`

var recommendationSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recommendationSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("recommendation schema: %v", err))
	}
	recommendationSchema = schema
}

// CleanModelResponse strips a surrounding Markdown code fence, with or
// without a json tag. Models wrap their output like that often enough that
// the raw text cannot be fed to the JSON parser directly.
func CleanModelResponse(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := -1
	if strings.Contains(response, "```json") {
		start = strings.Index(response, "```json") + 7
	} else {
		start = strings.Index(response, "```") + 3
	}

	end := strings.LastIndex(response, "```")

	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(response[start:end])
	}

	return strings.TrimSpace(response)
}

// ParseRecommendations validates and decodes the model output into at most
// 3 entries. Any structural problem is an error; the caller treats that the
// same as a failed model call.
func ParseRecommendations(raw string) ([]dto.CareerRecommendationDTO, error) {
	clean := CleanModelResponse(raw)

	result, err := recommendationSchema.Validate(gojsonschema.NewStringLoader(clean))
	if err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("response failed schema validation: %s", strings.Join(details, "; "))
	}

	var recs []dto.CareerRecommendationDTO
	if err := json.Unmarshal([]byte(clean), &recs); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("response contained no recommendations")
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs, nil
}
