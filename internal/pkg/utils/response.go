package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realty-catalog/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// FlagResponse - ответ back-office протокола галереи: {"success": false, "error": "..."}
type FlagResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// SendFlagError отвечает в формате {"success": false, "error": msg}.
// Ошибки хранилища отдаются со статусом 200, ошибки ввода и отсутствие записи сохраняют свой статус.
func SendFlagError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		return c.JSON(FlagResponse{Success: false, Error: err.Error()})
	}

	status := appErr.StatusCode
	if status >= fiber.StatusInternalServerError {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(FlagResponse{Success: false, Error: FlagMessage(appErr)})
}

// FlagMessage - текст ошибки для клиента, с причиной для ошибок хранилища
func FlagMessage(appErr *errors.AppError) string {
	if cause := appErr.Unwrap(); cause != nil {
		return appErr.Message + ": " + cause.Error()
	}
	return appErr.Message
}
