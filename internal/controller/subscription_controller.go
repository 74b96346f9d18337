package controller

import (
	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Renew(ctx *fiber.Ctx) error
	AddPayment(ctx *fiber.Ctx) error
	Balance(ctx *fiber.Ctx) error
	Receipt(ctx *fiber.Ctx) error
	Expire(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
	invoiceService      service.IInvoiceService
}

func NewSubscriptionController(
	subscriptionService service.ISubscriptionService,
	invoiceService service.IInvoiceService,
) ISubscriptionController {
	return &subscriptionController{
		subscriptionService: subscriptionService,
		invoiceService:      invoiceService,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")
	h.Post("expire", c.Expire)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/cancel", c.Cancel)
	h.Post(":id/renew", c.Renew)
	h.Post(":id/payments", c.AddPayment)
	h.Get(":id/balance", c.Balance)
	h.Get(":id/receipt", c.Receipt)
}

func (c *subscriptionController) GetAll(ctx *fiber.Ctx) error {
	var req dto.ListSubscriptionsRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.GetAll(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all subscriptions", res))
}

func (c *subscriptionController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show subscription", res))
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create subscription", res))
}

func (c *subscriptionController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSubscriptionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update subscription", res))
}

func (c *subscriptionController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.subscriptionService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete subscription", nil))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.Cancel(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success cancel subscription", res))
}

// Renew accepts JSON or multipart with an optional receipt file.
func (c *subscriptionController) Renew(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	var req dto.RenewSubscriptionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Receipt, err = receiptFromForm(ctx); err != nil {
		return err
	}

	res, err := c.subscriptionService.Renew(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success renew subscription", res))
}

// AddPayment accepts JSON or multipart with an optional receipt file.
func (c *subscriptionController) AddPayment(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	var req dto.AddSubscriptionPaymentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Receipt, err = receiptFromForm(ctx); err != nil {
		return err
	}

	res, err := c.subscriptionService.AddPayment(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add payment", res))
}

func (c *subscriptionController) Balance(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.Balance(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscription balance", res))
}

func (c *subscriptionController) Receipt(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	res, err := c.invoiceService.Receipt(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscription receipt", res))
}

func (c *subscriptionController) Expire(ctx *fiber.Ctx) error {
	var req dto.ExpireSubscriptionsRequest
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, &req); err != nil {
			return err
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.ExpireDue(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success expire subscriptions", res))
}
