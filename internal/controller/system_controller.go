package controller

import (
	"strconv"

	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type systemController struct {
	service service.ISystemService
}

func NewSystemController(service service.ISystemService) ISystemController {
	return &systemController{service: service}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/system")
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *systemController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	level := ctx.Query("level", "")

	logs, err := c.service.GetLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

// GetLogDetail looks a log up by its content hash, not a UUID.
func (c *systemController) GetLogDetail(ctx *fiber.Ctx) error {
	entry, err := c.service.GetLog(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", entry))
}
