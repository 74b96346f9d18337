package controller

import (
	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDurationController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type durationController struct {
	durationService service.IDurationService
}

func NewDurationController(durationService service.IDurationService) IDurationController {
	return &durationController{durationService: durationService}
}

func (c *durationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription-durations")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *durationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.durationService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all durations", res))
}

func (c *durationController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.durationService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show duration", res))
}

func (c *durationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDurationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.durationService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create duration", res))
}

func (c *durationController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDurationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.durationService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update duration", res))
}

func (c *durationController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.durationService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete duration", nil))
}
