package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hapchess/chess-mentor-hub/internal/dto"
	"github.com/hapchess/chess-mentor-hub/internal/middleware"
	"github.com/hapchess/chess-mentor-hub/internal/usecase"
	"github.com/hapchess/chess-mentor-hub/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(api fiber.Router) {
	// tight limit, this is the only brute-forceable endpoint
	api.Post("/coaches/login", middleware.RateLimiter(5, 1*time.Minute), h.Login)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.CoachLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid login payload",
		}, err)
	}

	resp, err := h.uc.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCredentialsRequired):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: err.Error(),
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "login failed",
			}, err)
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: resp.Message,
		Data:    resp,
	})
}
