package handler

import (
	"net/http"

	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// errorBody is the JSON shape of every failed request.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps a service error onto its status code and JSON body.
// Unclassified errors are logged and hidden behind a generic message.
func respondError(c echo.Context, err error, msg string) error {
	status := apperror.HTTPStatus(err)
	body := errorBody{Code: apperror.Code(err), Message: err.Error()}

	log := logger.FromContext(c)
	if status == http.StatusInternalServerError {
		log.Error(msg, zap.Error(err))
		body.Message = "internal server error"
	} else {
		log.Warn(msg, zap.Int("status", status), zap.String("reason", err.Error()))
	}

	return c.JSON(status, echo.Map{"error": body})
}

// invalidBody reports a request body that could not be decoded.
func invalidBody(c echo.Context, err error) error {
	logger.FromContext(c).Warn("Invalid request data", zap.Error(err))
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error": errorBody{Code: apperror.CodeInvalidInput, Message: "Invalid request data"},
	})
}
