package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"onboard-tools-backend/controllers"
	"onboard-tools-backend/lib/auth"
	apimodels "onboard-tools-backend/models/api"
	authapimodels "onboard-tools-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
	})
}

// @Summary Manager login
// @Tags Auth
// @Description Manager login
// @Param	body body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := auth.Instance.Login(payload)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "login failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}
