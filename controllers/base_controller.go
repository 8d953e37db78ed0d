package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"onboard-tools-backend/models"
	apimodels "onboard-tools-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps the known sentinel errors to HTTP statuses; everything
// else is a 500 with the fallback message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, errMsg string) error {
	switch {
	case errors.Is(err, models.ErrApplicantNotFound), errors.Is(err, models.ErrFileNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrInvalidTransition):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrMissingField):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(errMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(errMsg))
}
