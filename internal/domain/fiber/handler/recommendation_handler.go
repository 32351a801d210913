package handler

import (
	"errors"
	"fmt"
	"time"

	"career-recommender/internal/dto"
	"career-recommender/internal/middleware"
	"career-recommender/internal/usecase"
	"career-recommender/internal/util"

	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/recommendations/generate", middleware.RateLimiter(5, 1*time.Minute), h.Generate)
	router.Get("/recommendations", h.List)
}

type generateResponse struct {
	Success         bool                          `json:"success"`
	Recommendations []dto.CareerRecommendationDTO `json:"recommendations"`
	Message         string                        `json:"message"`
	Source          string                        `json:"source"`
	JobType         string                        `json:"jobType"`
}

func (h *RecommendationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRecommendationsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	principal := middleware.PrincipalFrom(c)
	result, err := h.uc.Generate(c.Context(), principal, req.UserID, req.JobType)
	if err != nil {
		return respondUsecaseError(c, err, "Failed to generate career recommendations")
	}

	return c.Status(fiber.StatusOK).JSON(generateResponse{
		Success:         true,
		Recommendations: result.Recommendations,
		Message:         fmt.Sprintf("%s career recommendations generated successfully", result.JobType),
		Source:          result.Source,
		JobType:         result.JobType,
	})
}

func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)

	userID := c.Query("userId")
	if userID == "" {
		userID = principal.UserID
	}

	recs, err := h.uc.GetStored(principal, userID, c.Query("jobType"))
	if err != nil {
		return respondUsecaseError(c, err, "Failed to fetch career recommendations")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get career recommendations",
		Data:    recs,
	})
}

// respondUsecaseError maps usecase errors onto the wire contract: 400 for bad
// input, 403 for principal mismatch, 500 with details for store failures.
func respondUsecaseError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, usecase.ErrMissingUserID):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Missing userId",
		})
	case errors.Is(err, usecase.ErrInvalidJobType):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "jobType must be full-time or internship",
		})
	case errors.Is(err, usecase.ErrForbidden):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: "Not allowed to act for this user",
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: message,
		}, err)
	}
}
