package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/model"
	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/memory"
	"gps-tracking-be/internal/repository/unitofwork"
	"gps-tracking-be/pkg/database"
	"gps-tracking-be/pkg/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

var testToday = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	ctx       context.Context
	uow       unitofwork.RepositoryFactory
	publisher *recordingPublisher
	now       time.Time

	durations     IDurationService
	clients       IClientService
	cars          ICarService
	methods       IPaymentMethodService
	payments      IPaymentService
	subscriptions ISubscriptionService
	invoices      IInvoiceService
	dashboard     IDashboardService

	devices           IDeviceService
	installers        IInstallerService
	installations     IInstallationService
	interventionTypes IInterventionTypeService
	interventions     IInterventionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewInMemory("svc_" + name)
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	env := &testEnv{
		ctx:       context.Background(),
		uow:       unitofwork.NewRepositoryFactory(db),
		publisher: &recordingPublisher{},
		now:       testToday,
	}
	clock := func() time.Time { return env.now }
	log := logger.NewNopLogger()

	env.durations = NewDurationService(env.uow, memory.NewDurationCache(time.Minute), log, "DH")
	env.clients = NewClientService(env.uow, env.durations, log, "DH")
	env.cars = NewCarService(env.uow, log)
	env.methods = NewPaymentMethodService(env.uow)
	env.payments = NewPaymentService(env.uow, env.durations, env.publisher, log, clock, "DH")
	env.subscriptions = NewSubscriptionService(env.uow, env.durations, env.publisher, log, clock, "DH")
	numberer := NewLocalInvoiceNumberer("FACT", StoredSequenceSeed(env.uow))
	env.invoices = NewInvoiceService(env.uow, env.durations, numberer, env.publisher, log, clock, "DH", 30)
	env.dashboard = NewDashboardService(env.uow, env.durations, clock, "DH")
	env.devices = NewDeviceService(env.uow, log)
	env.installers = NewInstallerService(env.uow, log)
	env.installations = NewInstallationService(env.uow, log, clock)
	env.interventionTypes = NewInterventionTypeService(env.uow, "DH")
	env.interventions = NewInterventionService(env.uow, log, clock, "DH")
	return env
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (e *testEnv) client(t *testing.T, name string) *dto.ClientResponse {
	t.Helper()
	c, err := e.clients.Create(e.ctx, &dto.CreateClientRequest{Name: name, Email: strings.ToLower(name) + "@example.ma"})
	require.NoError(t, err)
	return c
}

func (e *testEnv) duration(t *testing.T, name string, months int, price string) *dto.DurationResponse {
	t.Helper()
	d, err := e.durations.Create(e.ctx, &dto.CreateDurationRequest{Name: name, Months: months, Price: dec(price)})
	require.NoError(t, err)
	return d
}

func (e *testEnv) method(t *testing.T, name string) *dto.PaymentMethodResponse {
	t.Helper()
	m, err := e.methods.Create(e.ctx, &dto.CreatePaymentMethodRequest{Name: name})
	require.NoError(t, err)
	return m
}

func (e *testEnv) subscription(t *testing.T, clientId, durationId uuid.UUID, start string) *dto.SubscriptionResponse {
	t.Helper()
	s, err := e.subscriptions.Create(e.ctx, &dto.CreateSubscriptionRequest{
		ClientId:   clientId,
		DurationId: durationId,
		StartDate:  start,
	})
	require.NoError(t, err)
	return s
}

// ledgerFixture is one client with a 3 month / 300 DH subscription and a cash method.
type ledgerFixture struct {
	client   *dto.ClientResponse
	duration *dto.DurationResponse
	method   *dto.PaymentMethodResponse
	sub      *dto.SubscriptionResponse
}

func (e *testEnv) ledgerFixture(t *testing.T) ledgerFixture {
	t.Helper()
	f := ledgerFixture{
		client:   e.client(t, "Atlas"),
		duration: e.duration(t, "3 Mois", 3, "300"),
		method:   e.method(t, "Espèces"),
	}
	f.sub = e.subscription(t, f.client.Id, f.duration.Id, "2024-01-31")
	return f
}

func (e *testEnv) pay(t *testing.T, subId, methodId uuid.UUID, amount string) *dto.SubscriptionPaymentResponse {
	t.Helper()
	res, err := e.subscriptions.AddPayment(e.ctx, &dto.AddSubscriptionPaymentRequest{
		Id:       subId,
		Amount:   dec(amount),
		MethodId: methodId,
	})
	require.NoError(t, err)
	return res
}
