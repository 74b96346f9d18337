package bootstrap

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"gps-tracking-be/internal/config"
	"gps-tracking-be/internal/controller"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/memory"
	"gps-tracking-be/internal/repository/unitofwork"
	"gps-tracking-be/internal/service"
	internalWS "gps-tracking-be/internal/websocket"

	pktNats "gps-tracking-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	ledgerAuditLogFile = "ledger_events.log"
	durationCacheTTL   = 5 * time.Minute
)

type Container struct {
	// Controllers
	ClientController        controller.IClientController
	CarController           controller.ICarController
	PaymentMethodController controller.IPaymentMethodController
	DurationController      controller.IDurationController
	SubscriptionController  controller.ISubscriptionController
	PaymentController       controller.IPaymentController
	InvoiceController       controller.IInvoiceController
	DashboardController     controller.IDashboardController
	SystemController        controller.ISystemController
	LedgerFeedController    controller.ILedgerFeedController

	DeviceController           controller.IDeviceController
	InstallerController        controller.IInstallerController
	InstallationController     controller.IInstallationController
	InterventionTypeController controller.IInterventionTypeController
	InterventionController     controller.IInterventionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	auditLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), ledgerAuditLogFile))

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS is optional; without it ledger events stay in-process.
	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// Redis backs the invoice sequence when configured.
	seed := service.StoredSequenceSeed(uowFactory)
	numberer := service.NewLocalInvoiceNumberer(cfg.Ledger.InvoicePrefix, seed)
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		numberer = service.NewRedisInvoiceNumberer(rdb, cfg.Ledger.InvoicePrefix, seed, sysLogger)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// Live feed for connected dashboards.
	hub := internalWS.NewHub(sysLogger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	go hub.Run(hubCtx)
	c.closers = append(c.closers, stopHub)

	// 4. Services
	currency := cfg.Ledger.CurrencyLabel
	publisherService := service.NewPublisherService(cfg.App.EventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventsTopic, auditLogger, hub, forwarder)

	durationService := service.NewDurationService(uowFactory, memory.NewDurationCache(durationCacheTTL), sysLogger, currency)
	clientService := service.NewClientService(uowFactory, durationService, sysLogger, currency)
	carService := service.NewCarService(uowFactory, sysLogger)
	methodService := service.NewPaymentMethodService(uowFactory)
	paymentService := service.NewPaymentService(uowFactory, durationService, publisherService, sysLogger, nil, currency)
	subscriptionService := service.NewSubscriptionService(uowFactory, durationService, publisherService, sysLogger, nil, currency)
	invoiceService := service.NewInvoiceService(
		uowFactory,
		durationService,
		numberer,
		publisherService,
		sysLogger,
		nil,
		currency,
		cfg.Ledger.InvoiceDueDays,
	)
	dashboardService := service.NewDashboardService(uowFactory, durationService, nil, currency)
	systemService := service.NewSystemService(sysLogger)

	deviceService := service.NewDeviceService(uowFactory, sysLogger)
	installerService := service.NewInstallerService(uowFactory, sysLogger)
	installationService := service.NewInstallationService(uowFactory, sysLogger, nil)
	interventionTypeService := service.NewInterventionTypeService(uowFactory, currency)
	interventionService := service.NewInterventionService(uowFactory, sysLogger, nil, currency)

	// 5. Controllers
	c.ClientController = controller.NewClientController(clientService)
	c.CarController = controller.NewCarController(carService)
	c.PaymentMethodController = controller.NewPaymentMethodController(methodService)
	c.DurationController = controller.NewDurationController(durationService)
	c.SubscriptionController = controller.NewSubscriptionController(subscriptionService, invoiceService)
	c.PaymentController = controller.NewPaymentController(paymentService)
	c.InvoiceController = controller.NewInvoiceController(invoiceService)
	c.DashboardController = controller.NewDashboardController(dashboardService)
	c.SystemController = controller.NewSystemController(systemService)
	c.LedgerFeedController = controller.NewLedgerFeedController(hub)

	c.DeviceController = controller.NewDeviceController(deviceService)
	c.InstallerController = controller.NewInstallerController(installerService)
	c.InstallationController = controller.NewInstallationController(installationService)
	c.InterventionTypeController = controller.NewInterventionTypeController(interventionTypeService)
	c.InterventionController = controller.NewInterventionController(interventionService)

	c.ConsumerService = consumerService
	return c
}

// Close releases the event bus and external connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
