package enquiry

import (
	"net/http"

	"go-hrfms/internal/shared/apperror"
	"go-hrfms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("enquiry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("enquiry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("enquiry request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create enquiry validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, warnings, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if len(warnings) > 0 {
		response.SuccessWithWarnings(c, http.StatusCreated, resp, warnings)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetCountsByIndent(c *gin.Context) {
	resp, err := h.service.GetCountsByIndent(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetFollowUps(c *gin.Context) {
	resp, err := h.service.GetFollowUps(c.Request.Context(), c.Param("enquiryNo"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddFollowUp(c *gin.Context) {
	var req AddFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add follow-up validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.AddFollowUp(c.Request.Context(), c.Param("enquiryNo"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Promote(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http promote validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, warnings, err := h.service.Promote(c.Request.Context(), c.Param("enquiryNo"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if len(warnings) > 0 {
		response.SuccessWithWarnings(c, http.StatusCreated, resp, warnings)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}
