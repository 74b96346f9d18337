package controller

import (
	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDeviceController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type deviceController struct {
	deviceService service.IDeviceService
}

func NewDeviceController(deviceService service.IDeviceService) IDeviceController {
	return &deviceController{deviceService: deviceService}
}

func (c *deviceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/devices")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *deviceController) GetAll(ctx *fiber.Ctx) error {
	var req dto.ListDevicesRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.deviceService.GetAll(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all devices", res))
}

func (c *deviceController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.deviceService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show device", res))
}

func (c *deviceController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDeviceRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.deviceService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create device", res))
}

func (c *deviceController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDeviceRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.deviceService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update device", res))
}

func (c *deviceController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.deviceService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete device", nil))
}
