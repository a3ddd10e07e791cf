package controller

import (
	"github.com/gofiber/fiber/v2"

	"notebook-share-be/internal/dto"
	"notebook-share-be/internal/pkg/serverutils"
	"notebook-share-be/internal/service"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
}

func NewNotebookController(service service.INotebookService) INotebookController {
	return &notebookController{service: service}
}

func (c *notebookController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/notebook/v1")
	h.Use(auth)
	h.Get("", c.GetAll)
	h.Post("", c.Upsert)
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all notebooks", res))
}

func (c *notebookController) Upsert(ctx *fiber.Ctx) error {
	// Owner attribution comes from the acting session, not the request body.
	owner := ctx.Locals("username").(string)

	var req dto.UpsertNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Upsert(ctx.Context(), owner, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Notebook saved", res))
}
