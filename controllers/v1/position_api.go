package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruitment-backend/controllers"
	"recruitment-backend/lib/position"
	apimodels "recruitment-backend/models/api"
	positionapimodels "recruitment-backend/models/api/position"
)

type positionApiController struct {
	controllers.BaseAPIController
}

func InitPositionApiRouters(app *fiber.App) {
	controller := positionApiController{}
	app.Route("position", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary Create position
// @Tags Position
// @Description Create an open position
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 positionapimodels.PositionData	true	"position data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position [post]
func (c *positionApiController) create(ctx *fiber.Ctx) error {
	var payload positionapimodels.PositionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := position.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Position list
// @Tags Position
// @Description List positions with filter and pagination
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 positionapimodels.PositionFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/list [post]
func (c *positionApiController) list(ctx *fiber.Ctx) error {
	var payload positionapimodels.PositionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := position.Instance.List(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get position
// @Tags Position
// @Description Get a position by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "position ID"
// @Success 200 {object} apimodels.Response{data=positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [get]
func (c *positionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := position.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update position
// @Tags Position
// @Description Update a position by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "position ID"
// @Param	body body	 positionapimodels.PositionData	true	"position data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [put]
func (c *positionApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload positionapimodels.PositionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = position.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete position
// @Tags Position
// @Description Delete a position. Refused while candidates remain in its pipeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "position ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [delete]
func (c *positionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := position.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
