package apiv1

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"recruitment-backend/controllers"
	"recruitment-backend/lib/notification"
	apimodels "recruitment-backend/models/api"
	notificationapimodels "recruitment-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("eligible", controller.eligible)
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Get("pdf", controller.exportPDF)
			idRouter.Post("send", controller.send)
			idRouter.Get("photo/personal", controller.getPersonalPhoto)
			idRouter.Get("photo/:photo_id", controller.getPhoto)
		})
	})
}

type notificationFilter struct {
	apimodels.Pagination
	Search string `json:"search"` // substring over full name/email/phone
}

// @Summary Eligible candidates
// @Tags Notification
// @Description Candidates in the offer or hired stage without a notification yet
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.EligibleCandidate}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/eligible [get]
func (c *notificationApiController) eligible(ctx *fiber.Ctx) error {
	list, err := notification.Instance.EligibleCandidates()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Notification list
// @Tags Notification
// @Description List onboarding notifications with filter and pagination
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/list [post]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var payload notificationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := notification.Instance.List(payload.Search, payload.Pagination)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create notification
// @Tags Notification
// @Description Create the onboarding notification of a hired candidate. Multipart: `data` JSON field plus optional `personal_photo` and `id_card_photos` parts
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   personal_photo		formData	file 	false 	"personal photo"
// @Param   id_card_photos		formData	file 	false 	"ID card photos"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification [post]
func (c *notificationApiController) create(ctx *fiber.Ctx) error {
	payload, personalPhoto, idCardPhotos, err := c.parseNotificationForm(ctx, true)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := notification.Instance.Create(ctx.UserContext(), payload, personalPhoto, idCardPhotos)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get notification
// @Tags Notification
// @Description Get an onboarding notification by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id} [get]
func (c *notificationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := notification.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update notification
// @Tags Notification
// @Description Replace an onboarding notification wholesale
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Param   personal_photo		formData	file 	false 	"personal photo"
// @Param   id_card_photos		formData	file 	false 	"ID card photos"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id} [put]
func (c *notificationApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload, personalPhoto, idCardPhotos, err := c.parseNotificationForm(ctx, false)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = notification.Instance.Update(ctx.UserContext(), id, payload, personalPhoto, idCardPhotos); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete notification
// @Tags Notification
// @Description Delete an onboarding notification with its photos
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id} [delete]
func (c *notificationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = notification.Instance.Delete(ctx.UserContext(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download dossier PDF
// @Tags Notification
// @Description Render the onboarding notification as a PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/pdf [get]
func (c *notificationApiController) exportPDF(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, pdfFile, err := notification.Instance.ExportPDF(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(pdfFile)
}

// @Summary Email dossier
// @Tags Notification
// @Description Email the dossier PDF to the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/send [post]
func (c *notificationApiController) send(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = notification.Instance.SendDossier(ctx.UserContext(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download personal photo
// @Tags Notification
// @Description Download the candidate's personal photo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/photo/personal [get]
func (c *notificationApiController) getPersonalPhoto(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	contentType, body, err := notification.Instance.GetPersonalPhoto(ctx.UserContext(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(body)
}

// @Summary Download ID card photo
// @Tags Notification
// @Description Download one ID card photo of the notification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Param   photo_id          	path    string  	true         "photo ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/photo/{photo_id} [get]
func (c *notificationApiController) getPhoto(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	photoID, err := c.GetIDByKey(ctx, "photo_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, contentType, body, err := notification.Instance.GetPhoto(ctx.UserContext(), id, photoID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}

func (c *notificationApiController) parseNotificationForm(ctx *fiber.Ctx, isCreate bool) (notificationapimodels.NotificationData, *notification.PhotoUpload, []notification.PhotoUpload, error) {
	var payload notificationapimodels.NotificationData
	form, err := ctx.MultipartForm()
	if err != nil {
		return payload, nil, nil, errors.New("multipart form expected")
	}
	values := form.Value["data"]
	if len(values) == 0 {
		return payload, nil, nil, errors.New("form field \"data\" is required")
	}
	if err = json.Unmarshal([]byte(values[0]), &payload); err != nil {
		return payload, nil, nil, errors.New("unable to read notification data")
	}
	if err = payload.Validate(isCreate); err != nil {
		return payload, nil, nil, err
	}
	personalPhoto, idCardPhotos, err := notification.CollectPhotos(form)
	if err != nil {
		return payload, nil, nil, err
	}
	return payload, personalPhoto, idCardPhotos, nil
}
