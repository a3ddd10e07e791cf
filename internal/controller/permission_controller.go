package controller

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"notebook-share-be/internal/dto"
	"notebook-share-be/internal/pkg/roster"
	"notebook-share-be/internal/pkg/serverutils"
	"notebook-share-be/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type IPermissionController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	ListShares(ctx *fiber.Ctx) error
	Grant(ctx *fiber.Ctx) error
	Revoke(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	Template(ctx *fiber.Ctx) error
}

type permissionController struct {
	service service.IPermissionService
}

func NewPermissionController(service service.IPermissionService) IPermissionController {
	return &permissionController{service: service}
}

func (c *permissionController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/shares/template", auth, c.Template)

	h := r.Group("/notebook/v1/:id/shares")
	h.Use(auth)
	h.Get("", c.ListShares)
	h.Post("", c.Grant)
	h.Delete("/:email", c.Revoke)
	h.Post("/import", c.Import)
}

func (c *permissionController) ListShares(ctx *fiber.Ctx) error {
	notebookID := ctx.Params("id")

	res, err := c.service.ListShares(ctx.Context(), notebookID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get share list", res))
}

func (c *permissionController) Grant(ctx *fiber.Ctx) error {
	notebookID := ctx.Params("id")

	var req dto.GrantPermissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Grant(ctx.Context(), notebookID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Share saved", res))
}

func (c *permissionController) Revoke(ctx *fiber.Ctx) error {
	notebookID := ctx.Params("id")
	// PathUnescape, not QueryUnescape: a literal + is common in email local
	// parts and must survive the decode.
	email, err := url.PathUnescape(ctx.Params("email"))
	if err != nil || email == "" {
		return serverutils.NewBadRequest("invalid email parameter")
	}

	if err := c.service.Revoke(ctx.Context(), notebookID, email); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Share revoked", nil))
}

func (c *permissionController) Import(ctx *fiber.Ctx) error {
	notebookID := ctx.Params("id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewBadRequest("missing upload file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.NewBadRequest("could not open upload file")
	}
	defer file.Close()

	rows, err := roster.Parse(file)
	if err != nil {
		return err
	}

	res, err := c.service.BatchImport(ctx.Context(), notebookID, rows)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Import finished", res))
}

func (c *permissionController) Template(ctx *fiber.Ctx) error {
	buf, err := roster.Template()
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="template.xlsx"`)
	return ctx.Send(buf.Bytes())
}
