package api

import (
	"errors"
	"net/http"

	"HousePrice/internal/domain/models"
	"HousePrice/internal/form"
	"HousePrice/internal/usecase"
	xhttp "HousePrice/pkg/http"
	xlogger "HousePrice/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	healthStatus  = "healthy"
	healthMessage = "House Price Prediction API is running"
)

// PredictEchoHandler serves the prediction API.
type PredictEchoHandler struct {
	logger *xlogger.Logger
	svc    *usecase.PredictionService
	mw     []echo.MiddlewareFunc
}

func NewPredictEchoHandler(logger *xlogger.Logger, svc *usecase.PredictionService, mw ...echo.MiddlewareFunc) *PredictEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &PredictEchoHandler{logger: logger.Component("api"), svc: svc, mw: mw}
}

func (h *PredictEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/health", h.Health)
	g.POST("/predict", h.Predict, h.mw...)
	g.GET("/model-info", h.ModelInfo)
}

func (h *PredictEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.HealthResponse{Status: healthStatus, Message: healthMessage})
}

func (h *PredictEchoHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.AppErrorResponse(c, verr)
	}

	res, err := h.svc.Predict(c.Request().Context(), *req)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return xhttp.AppErrorResponse(c, xhttp.FieldError(string(verr.Field), verr.Message))
		}
		h.logger.Error("predict usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("Prediction failed: %v", err).WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PredictEchoHandler) ModelInfo(c echo.Context) error {
	info, err := h.svc.Info()
	if err != nil {
		h.logger.Error("model info error", xlogger.Error(err))
		return xhttp.ErrorResponse(c, http.StatusInternalServerError, "Model not loaded")
	}
	return xhttp.SuccessResponse(c, info)
}
