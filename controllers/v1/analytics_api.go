package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"onboard-tools-backend/controllers"
	"onboard-tools-backend/lib/analytics"
	apimodels "onboard-tools-backend/models/api"
	analyticsapimodels "onboard-tools-backend/models/api/analytics"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Put("funnel", controller.funnel)
		router.Put("geo", controller.geo)
		router.Put("trend", controller.trend)
		router.Put("conversion", controller.conversion)
		router.Put("time_to_hire", controller.timeToHire)
		router.Put("health", controller.health)
		router.Put("ratings", controller.ratings)
		router.Put("skills", controller.skills)
		router.Put("funnel_export", controller.funnelExport)
		router.Put("applicants_export", controller.applicantsExport)
	})
}

func (c *analyticsApiController) parseFilter(ctx *fiber.Ctx, payload *analyticsapimodels.AnalyticsFilter) error {
	if err := c.BodyParser(ctx, payload); err != nil {
		return err
	}
	return payload.Validate()
}

// @Summary Pipeline funnel
// @Tags Analytics
// @Description Pipeline funnel
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.FunnelData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/funnel [put]
func (c *analyticsApiController) funnel(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.Funnel(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build pipeline funnel")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Applicant geography
// @Tags Analytics
// @Description Applicant geography
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.GeoData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/geo [put]
func (c *analyticsApiController) geo(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.Geo(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build geography rollup")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Application trend
// @Tags Analytics
// @Description Application trend
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.TrendFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.TrendData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/trend [put]
func (c *analyticsApiController) trend(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.TrendFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.Trend(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build application trend")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Go-live conversion
// @Tags Analytics
// @Description Go-live conversion
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.ConversionData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/conversion [put]
func (c *analyticsApiController) conversion(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.Conversion(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to compute conversion")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Time to hire
// @Tags Analytics
// @Description Time to hire
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.TimeToHireData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/time_to_hire [put]
func (c *analyticsApiController) timeToHire(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.TimeToHire(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to compute time to hire")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Pipeline health
// @Tags Analytics
// @Description Pipeline health
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.HealthData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/health [put]
func (c *analyticsApiController) health(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.Health(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to compute pipeline health")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Rating distribution
// @Tags Analytics
// @Description Rating distribution
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.RatingData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/ratings [put]
func (c *analyticsApiController) ratings(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.Ratings(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to compute rating distribution")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Top applicant skills
// @Tags Analytics
// @Description Top applicant skills
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.SkillsData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/skills [put]
func (c *analyticsApiController) skills(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.Skills(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to compute skills rollup")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Pipeline funnel. Export to Excel
// @Tags Analytics
// @Description Pipeline funnel. Export to Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/funnel_export [put]
func (c *analyticsApiController) funnelExport(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.FunnelExportToXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export pipeline funnel to Excel")
	}
	fileName := fmt.Sprintf("funnel-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Applicant list. Export to Excel
// @Tags Analytics
// @Description Applicant list. Export to Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 analyticsapimodels.AnalyticsFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/applicants_export [put]
func (c *analyticsApiController) applicantsExport(ctx *fiber.Ctx) error {
	var payload analyticsapimodels.AnalyticsFilter
	if err := c.parseFilter(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.ApplicantsExportToXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applicant list to Excel")
	}
	fileName := fmt.Sprintf("applicants-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
