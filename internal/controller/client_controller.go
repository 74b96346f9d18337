package controller

import (
	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IClientController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Balance(ctx *fiber.Ctx) error
	Payments(ctx *fiber.Ctx) error
}

type clientController struct {
	clientService service.IClientService
}

func NewClientController(clientService service.IClientService) IClientController {
	return &clientController{clientService: clientService}
}

func (c *clientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/clients")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/balance", c.Balance)
	h.Get(":id/payments", c.Payments)
}

func (c *clientController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.clientService.GetAll(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all clients", res))
}

func (c *clientController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.clientService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show client", res))
}

func (c *clientController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create client", res))
}

func (c *clientController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateClientRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update client", res))
}

func (c *clientController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.clientService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete client", nil))
}

func (c *clientController) Balance(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.clientService.Balance(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get client balance", res))
}

func (c *clientController) Payments(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.clientService.Payments(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get client payments", res))
}
