package controller

import (
	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICarController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type carController struct {
	carService service.ICarService
}

func NewCarController(carService service.ICarService) ICarController {
	return &carController{carService: carService}
}

func (c *carController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cars")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *carController) GetAll(ctx *fiber.Ctx) error {
	var clientId *uuid.UUID
	if raw := ctx.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperror.Validation("invalid client_id %q", raw)
		}
		clientId = &id
	}

	res, err := c.carService.GetAll(ctx.Context(), clientId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all cars", res))
}

func (c *carController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.carService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show car", res))
}

func (c *carController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCarRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.carService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create car", res))
}

func (c *carController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCarRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.carService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update car", res))
}

func (c *carController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.carService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete car", nil))
}
