package apiv1

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"onboard-tools-backend/controllers"
	"onboard-tools-backend/lib/applicant"
	applicanthistoryhandler "onboard-tools-backend/lib/applicant-history"
	filestorage "onboard-tools-backend/lib/file-storage"
	"onboard-tools-backend/lib/pipeline"
	authutils "onboard-tools-backend/lib/utils/auth-utils"
	apimodels "onboard-tools-backend/models/api"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Get("doc/:id", controller.GetDoc) // download a document by file id
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Post("upload_resume", controller.UploadResume)
			idRouter.Post("upload_doc", controller.UploadDoc)
			idRouter.Get("doc/list", controller.GetDocList)
			idRouter.Get("resume", controller.GetResume)
			idRouter.Get("profile_pdf", controller.GetProfilePDF)
			idRouter.Get("", controller.get)
			idRouter.Put("changes", controller.changes)
			idRouter.Put("note", controller.note)
			idRouter.Put("advance", controller.advance)
			idRouter.Put("move_back", controller.moveBack)
			idRouter.Put("status", controller.setStatus)
			idRouter.Put("decline", controller.decline)
			idRouter.Put("hold", controller.hold)
			idRouter.Put("resume_review", controller.resume)
		})
	})
}

// @Summary Applicant list
// @Tags Applicant
// @Description Applicant list
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 applicantapimodels.ApplicantFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicant.Instance.ListOfApplicant(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applicant list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Add applicant
// @Tags Applicant
// @Description Add applicant
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 applicantapimodels.ApplicantData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicant.Instance.CreateApplicant(authutils.GetManagerName(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to add applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Applicant card
// @Tags Applicant
// @Description Applicant card
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := applicant.Instance.GetApplicant(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Applicant activity log
// @Tags Applicant
// @Description Applicant activity log
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Param	body body	 applicantapimodels.ApplicantHistoryFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/changes [put]
func (c *applicantApiController) changes(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.ApplicantHistoryFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicanthistoryhandler.Instance.List(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applicant activity log")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Add applicant note
// @Tags Applicant
// @Description Add applicant note
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Param	body body	 applicantapimodels.ApplicantNote	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/note [put]
func (c *applicantApiController) note(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.ApplicantNote
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicanthistoryhandler.Instance.SaveNote(authutils.GetManagerName(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save applicant note")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Move applicant one stage forward
// @Tags Applicant
// @Description Move applicant one stage forward
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Param	body body	 applicantapimodels.TransitionRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/advance [put]
func (c *applicantApiController) advance(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.TransitionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.Advance(authutils.GetManagerName(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to advance applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Move applicant one stage back
// @Tags Applicant
// @Description Move applicant one stage back
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/move_back [put]
func (c *applicantApiController) moveBack(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.MoveBack(authutils.GetManagerName(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to move applicant back")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Set applicant status
// @Tags Applicant
// @Description Set applicant status
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Param	body body	 applicantapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/status [put]
func (c *applicantApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.SetStatus(authutils.GetManagerName(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to set applicant status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Decline applicant
// @Tags Applicant
// @Description Decline applicant
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Param	body body	 applicantapimodels.DeclineRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/decline [put]
func (c *applicantApiController) decline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.DeclineRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.Decline(authutils.GetManagerName(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to decline applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Put applicant under review
// @Tags Applicant
// @Description Put applicant under review
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/hold [put]
func (c *applicantApiController) hold(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.Hold(authutils.GetManagerName(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to put applicant under review")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Return applicant from review to the held stage
// @Tags Applicant
// @Description Return applicant from review to the held stage
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/resume_review [put]
func (c *applicantApiController) resume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.Resume(authutils.GetManagerName(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to resume applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload applicant resume
// @Tags Applicant
// @Description Upload applicant resume
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Param   resume		formData	file 	true 	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/upload_resume [post]
func (c *applicantApiController) UploadResume(ctx *fiber.Ctx) error {
	return c.uploadFile(ctx, "resume", filestorage.Instance.UploadResume)
}

// @Summary Upload applicant document
// @Tags Applicant
// @Description Upload applicant document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Param   document		formData	file 	true 	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/upload_doc [post]
func (c *applicantApiController) UploadDoc(ctx *fiber.Ctx) error {
	return c.uploadFile(ctx, "document", filestorage.Instance.UploadDoc)
}

func (c *applicantApiController) uploadFile(ctx *fiber.Ctx, field string, uploadFn func(ctx context.Context, applicantID string, file []byte, fileName string) error) error {
	applicantID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile(field)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = uploadFn(ctx.UserContext(), applicantID, fileBody, file.Filename)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store uploaded file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download applicant resume
// @Tags Applicant
// @Description Download applicant resume
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/resume [get]
func (c *applicantApiController) GetResume(ctx *fiber.Ctx) error {
	applicantID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := filestorage.Instance.GetResume(ctx.UserContext(), applicantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load resume")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Download applicant document
// @Tags Applicant
// @Description Download applicant document
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"file id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/doc/{id} [get]
func (c *applicantApiController) GetDoc(ctx *fiber.Ctx) error {
	fileID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := filestorage.Instance.GetFile(ctx.UserContext(), fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load document")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Applicant document list
// @Tags Applicant
// @Description Applicant document list
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/doc/list [get]
func (c *applicantApiController) GetDocList(ctx *fiber.Ctx) error {
	applicantID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.GetDocList(ctx.UserContext(), applicantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load document list")
	}
	type docView struct {
		ID       string `json:"id"`
		FileName string `json:"file_name"`
		Date     string `json:"date"`
	}
	result := make([]docView, 0, len(list))
	for _, rec := range list {
		result = append(result, docView{
			ID:       rec.ID,
			FileName: rec.FileName,
			Date:     rec.CreatedAt.Format("02.01.2006 15:04"),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Applicant profile as PDF
// @Tags Applicant
// @Description Applicant profile as PDF
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true	"applicant id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/profile_pdf [get]
func (c *applicantApiController) GetProfilePDF(ctx *fiber.Ctx) error {
	applicantID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := applicant.Instance.GetProfilePDF(applicantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build applicant profile")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}
