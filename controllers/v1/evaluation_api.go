package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruitment-backend/controllers"
	"recruitment-backend/lib/evaluation"
	apimodels "recruitment-backend/models/api"
	evaluationapimodels "recruitment-backend/models/api/evaluation"
)

type evaluationApiController struct {
	controllers.BaseAPIController
}

func InitEvaluationApiRouters(app *fiber.App) {
	controller := evaluationApiController{}
	app.Route("notification/:id/evaluation", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Post("", controller.save)
	})
}

// @Summary Get evaluation
// @Tags Evaluation
// @Description Probation evaluation of a notification. 404 while none has been saved
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/evaluation [get]
func (c *evaluationApiController) get(ctx *fiber.Ctx) error {
	notificationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := evaluation.Instance.GetByNotificationID(notificationID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("evaluation not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Save evaluation
// @Tags Evaluation
// @Description Save the probation evaluation, replacing any previous one. The first save emails the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "notification ID"
// @Param	body body	 evaluationapimodels.EvaluationData	true	"evaluation data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/evaluation [post]
func (c *evaluationApiController) save(ctx *fiber.Ctx) error {
	notificationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.EvaluationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if _, err = evaluation.Instance.Save(notificationID, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
