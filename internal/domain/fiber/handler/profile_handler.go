package handler

import (
	"career-recommender/internal/dto"
	"career-recommender/internal/middleware"
	"career-recommender/internal/usecase"
	"career-recommender/internal/util"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Put("/profile/resume", h.SaveResume)
	router.Get("/profile/resume", h.GetResume)
	router.Post("/quiz/responses", h.SaveQuizResponses)
	router.Get("/quiz/responses", h.GetQuizResponses)
}

func (h *ProfileHandler) SaveResume(c *fiber.Ctx) error {
	var req dto.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	principal := middleware.PrincipalFrom(c)
	if err := h.uc.SaveResume(principal.UserID, req); err != nil {
		return respondUsecaseError(c, err, "Failed to save resume")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success save resume",
	})
}

func (h *ProfileHandler) GetResume(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	resume, err := h.uc.GetResume(principal.UserID)
	if err != nil {
		return respondUsecaseError(c, err, "Failed to fetch resume")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get resume",
		Data:    resume,
	})
}

func (h *ProfileHandler) SaveQuizResponses(c *fiber.Ctx) error {
	var req dto.SaveQuizResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	principal := middleware.PrincipalFrom(c)
	if err := h.uc.SaveQuizResponses(principal.UserID, req); err != nil {
		return respondUsecaseError(c, err, "Failed to save quiz responses")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success save quiz responses",
	})
}

func (h *ProfileHandler) GetQuizResponses(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	responses, err := h.uc.GetQuizResponses(principal.UserID)
	if err != nil {
		return respondUsecaseError(c, err, "Failed to fetch quiz responses")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get quiz responses",
		Data:    responses,
	})
}
