package controller

import (
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{dashboardService: dashboardService}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", c.GetStats)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}
