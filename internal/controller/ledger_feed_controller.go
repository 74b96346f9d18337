package controller

import (
	internalWS "gps-tracking-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ILedgerFeedController interface {
	RegisterRoutes(r fiber.Router)
	ServeWs(ctx *fiber.Ctx) error
}

type ledgerFeedController struct {
	hub *internalWS.Hub
}

func NewLedgerFeedController(hub *internalWS.Hub) ILedgerFeedController {
	return &ledgerFeedController{hub: hub}
}

func (c *ledgerFeedController) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/ledger", c.ServeWs)
}

// ServeWs upgrades the request and streams ledger events as JSON frames.
func (c *ledgerFeedController) ServeWs(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		internalWS.ServeWs(c.hub, conn)
	})(ctx)
}
