package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruitment-backend/controllers"
	"recruitment-backend/lib/candidate"
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	candidateapimodels "recruitment-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Get("stages", controller.stages)
		router.Route(":position_id", func(posRouter fiber.Router) {
			posRouter.Get("board", controller.board)
			posRouter.Get("export", controller.exportXLSX)
			posRouter.Post("candidate", controller.create)
		})
	})
	app.Route("candidate/:id", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.update)
		router.Delete("", controller.delete)
		router.Put("stage", controller.moveStage)
		router.Get("history", controller.history)
		router.Get("cv/:file_id", controller.getCV)
	})
}

type stageMoveRequest struct {
	Stage string `json:"stage"`
}

// @Summary Pipeline stages
// @Tags Pipeline
// @Description Ordered stage set of the hiring pipeline. Clients render board columns from this list
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]models.StageInfo}
// @Failure 403
// @router /api/v1/pipeline/stages [get]
func (c *candidateApiController) stages(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(models.Stages()))
}

// @Summary Pipeline board
// @Tags Pipeline
// @Description Kanban board of a position: one column per stage with candidate cards
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   position_id          		path    string  	true         "position ID"
// @Param   search          	query   string  	false        "substring over name/email/phone"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{position_id}/board [get]
func (c *candidateApiController) board(ctx *fiber.Ctx) error {
	positionID, err := c.GetIDByKey(ctx, "position_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	board, err := candidate.Instance.Board(positionID, ctx.Query("search"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(board))
}

// @Summary Export candidates
// @Tags Pipeline
// @Description Download the position's candidate list as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   position_id          		path    string  	true         "position ID"
// @Param   search          	query   string  	false        "substring over name/email/phone"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{position_id}/export [get]
func (c *candidateApiController) exportXLSX(ctx *fiber.Ctx) error {
	positionID, err := c.GetIDByKey(ctx, "position_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, file, err := candidate.Instance.ExportXLSX(positionID, ctx.Query("search"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(file.Bytes())
}

// @Summary Create candidate
// @Tags Candidate
// @Description Add a candidate to a position's pipeline. Multipart: form fields plus up to 5 `cv` file parts
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   position_id          		path    string  	true         "position ID"
// @Param   cv		formData	file 	false 	"CV files"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{position_id}/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	positionID, err := c.GetIDByKey(ctx, "position_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload, files, err := c.parseCandidateForm(ctx, true)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidate.Instance.Create(ctx.UserContext(), positionID, payload, files)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get candidate
// @Tags Candidate
// @Description Get a candidate by id with CV attachments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidate.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update candidate
// @Tags Candidate
// @Description Update a candidate. Attachments absent from kept_cv_ids are deleted; new `cv` parts are added
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "candidate ID"
// @Param   cv		formData	file 	false 	"new CV files"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload, files, err := c.parseCandidateForm(ctx, false)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = candidate.Instance.Update(ctx.UserContext(), id, payload, files); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete candidate
// @Tags Candidate
// @Description Delete a candidate with CV attachments and history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidate.Instance.Delete(ctx.UserContext(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Move candidate stage
// @Tags Candidate
// @Description Move a candidate to another pipeline stage. Unknown stage values are rejected
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/stage [put]
func (c *candidateApiController) moveStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload stageMoveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	target, err := models.ParseStage(payload.Stage)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = candidate.Instance.MoveStage(id, target, middleware.GetUserName(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Candidate history
// @Tags Candidate
// @Description Audit trail of the candidate, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/history [get]
func (c *candidateApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidate.Instance.History(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download CV
// @Tags Candidate
// @Description Download one CV attachment of a candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "candidate ID"
// @Param   file_id          	path    string  	true         "CV file ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/cv/{file_id} [get]
func (c *candidateApiController) getCV(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := c.GetIDByKey(ctx, "file_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, contentType, body, err := candidate.Instance.GetCV(ctx.UserContext(), id, fileID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}

func (c *candidateApiController) parseCandidateForm(ctx *fiber.Ctx, isCreate bool) (candidateapimodels.CandidateData, []candidate.NewCVFile, error) {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return payload, nil, err
	}
	// a request without file parts is still valid
	form, err := ctx.MultipartForm()
	if err != nil {
		form = nil
	}
	files, err := candidate.CollectCVUploads(form)
	if err != nil {
		return payload, nil, err
	}
	if err = payload.Validate(isCreate, len(files)); err != nil {
		return payload, nil, err
	}
	return payload, files, nil
}
