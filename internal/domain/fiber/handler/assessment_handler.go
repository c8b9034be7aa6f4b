package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hapchess/chess-mentor-hub/internal/dto"
	"github.com/hapchess/chess-mentor-hub/internal/middleware"
	"github.com/hapchess/chess-mentor-hub/internal/usecase"
	"github.com/hapchess/chess-mentor-hub/internal/util"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type AssessmentHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/assessments", middleware.RateLimiter(10, 1*time.Minute), h.Create)
	api.Get("/assessments", h.List)
	// fixed path must be registered ahead of the :id routes
	api.Get("/assessments/summary/all", h.SummaryAll)
	api.Get("/assessments/:id", h.Get)
	api.Get("/assessments/:id/summary", h.Summary)
}

func (h *AssessmentHandler) Create(c *fiber.Ctx) error {
	req := dto.NewAssessmentCreateRequest()
	if err := c.BodyParser(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid assessment payload",
		}, err)
	}

	assessment, err := h.uc.Submit(req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "invalid assessment payload",
				Details: validationDetails(verrs),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create assessment",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Assessment created",
		Data:    assessment,
	})
}

func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	assessments, pagination, err := h.uc.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list assessments",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get assessments",
		Data:       assessments,
		Pagination: pagination,
	})
}

func (h *AssessmentHandler) Get(c *fiber.Ctx) error {
	assessment, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return h.notFoundOrError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get assessment",
		Data:    assessment,
	})
}

func (h *AssessmentHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summarize(c.Params("id"))
	if err != nil {
		return h.notFoundOrError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get assessment summary",
		Data:    summary,
	})
}

func (h *AssessmentHandler) SummaryAll(c *fiber.Ctx) error {
	summaries, err := h.uc.SummarizeAll()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to summarize assessments",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get assessment summaries",
		Data:    summaries,
	})
}

func (h *AssessmentHandler) notFoundOrError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "assessment not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "failed to get assessment",
	}, err)
}

func validationDetails(verrs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = "failed on " + fe.Tag()
	}
	return details
}
