package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"gps-tracking-be/internal/bootstrap"
	"gps-tracking-be/internal/config"
	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/model"
	"gps-tracking-be/internal/pkg/serverutils"
	"gps-tracking-be/internal/server"
	"gps-tracking-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			CorsAllowedOrigins: "http://localhost:5173",
			EventsTopic:        "LEDGER_EVENTS_TEST",
		},
		Database: config.DatabaseConfig{Driver: database.DriverSQLite},
		Ledger: config.LedgerConfig{
			CurrencyLabel:  "DH",
			InvoicePrefix:  "FACT",
			InvoiceDueDays: 30,
		},
	}

	db, err := database.NewInMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	container := bootstrap.NewContainer(db, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, container.ConsumerService.Consume(ctx))

	t.Cleanup(func() {
		cancel()
		container.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) serverutils.BaseResponse[T] {
	t.Helper()
	defer resp.Body.Close()

	var out serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type catalogFixture struct {
	client   dto.ClientResponse
	duration dto.DurationResponse
	method   dto.PaymentMethodResponse
}

func seedCatalog(t *testing.T, app *fiber.App) catalogFixture {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/clients", map[string]string{"name": "Atlas Transport"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	client := decode[dto.ClientResponse](t, resp).Data

	resp = doJSON(t, app, http.MethodPost, "/api/subscription-durations", map[string]interface{}{
		"name": "3 Mois", "months": 3, "price": "300",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	duration := decode[dto.DurationResponse](t, resp).Data

	resp = doJSON(t, app, http.MethodPost, "/api/payment-methods", map[string]string{"name": "Espèces"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	method := decode[dto.PaymentMethodResponse](t, resp).Data

	return catalogFixture{client: client, duration: duration, method: method}
}

func TestLedgerAPI_SubscriptionPaymentFlow(t *testing.T) {
	app := newApp(t)
	f := seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/subscriptions", map[string]interface{}{
		"client_id":   f.client.Id,
		"duration_id": f.duration.Id,
		"start_date":  "2024-01-31",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sub := decode[dto.SubscriptionResponse](t, resp).Data
	assert.Equal(t, "2024-04-30", sub.EndDate)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, "unpaid", sub.PaymentStatus)
	assert.True(t, decimal.NewFromInt(300).Equal(sub.RemainingAmount))

	// Multipart instalment with a receipt.
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("amount", "120.50"))
	require.NoError(t, form.WriteField("method_id", f.method.Id.String()))
	require.NoError(t, form.WriteField("date", "2024-02-01"))
	part, err := form.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="receipt"; filename="recu.png"`},
		"Content-Type":        {"application/octet-stream"},
	})
	require.NoError(t, err)
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions/"+sub.Id.String()+"/payments", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	paid := decode[dto.SubscriptionPaymentResponse](t, resp).Data
	require.NotNil(t, paid.Payment.Receipt)
	assert.Equal(t, "recu.png", paid.Payment.Receipt.FileName)
	assert.Equal(t, "image/png", paid.Payment.Receipt.ContentType)
	assert.True(t, strings.HasPrefix(paid.Payment.Reference, "PAY-"))
	assert.Equal(t, "partial", paid.Subscription.PaymentStatus)
	assert.True(t, decimal.RequireFromString("179.50").Equal(paid.Subscription.RemainingAmount))

	// Overpayment is refused without touching the ledger.
	resp = doJSON(t, app, http.MethodPost, "/api/subscriptions/"+sub.Id.String()+"/payments", map[string]interface{}{
		"amount": "500", "method_id": f.method.Id,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	rejected := decode[any](t, resp)
	assert.False(t, rejected.Success)
	assert.Contains(t, rejected.Message, "exceeds the remaining balance")

	resp = doJSON(t, app, http.MethodGet, "/api/subscriptions/"+sub.Id.String()+"/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	balance := decode[dto.BalanceResponse](t, resp).Data
	assert.True(t, decimal.RequireFromString("120.50").Equal(balance.TotalPaid))
	assert.Equal(t, "179.50 DH", balance.RemainingDisplay)

	resp = doJSON(t, app, http.MethodGet, "/api/subscriptions/"+sub.Id.String()+"/receipt", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	receipt := decode[dto.ReceiptResponse](t, resp).Data
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, "Atlas Transport", receipt.Client.Name)
	assert.Nil(t, receipt.Lines[0].Payment.Receipt)

	// The client now owns ledger rows.
	resp = doJSON(t, app, http.MethodDelete, "/api/clients/"+f.client.Id.String(), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dto.DashboardResponse](t, resp).Data
	assert.EqualValues(t, 1, stats.TotalClients)
	assert.Len(t, stats.RecentPayments, 1)
}

func TestLedgerAPI_InvoiceNumbering(t *testing.T) {
	app := newApp(t)
	f := seedCatalog(t, app)

	create := func() dto.InvoiceResponse {
		resp := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]interface{}{
			"client_id": f.client.Id,
			"date":      "2024-05-02",
			"items": []map[string]interface{}{
				{"description": "Boîtier GPS", "quantity": 2, "unit_price": "450.50"},
			},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		return decode[dto.InvoiceResponse](t, resp).Data
	}

	first := create()
	second := create()
	assert.Equal(t, "FACT-2024-0001", first.Number)
	assert.Equal(t, "FACT-2024-0002", second.Number)
	assert.True(t, decimal.NewFromInt(901).Equal(first.TotalAmount))
}

func TestLedgerAPI_ErrorShapes(t *testing.T) {
	app := newApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/subscriptions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/subscriptions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	notFound := decode[any](t, resp)
	assert.False(t, notFound.Success)
	assert.Equal(t, http.StatusNotFound, notFound.Code)

	resp = doJSON(t, app, http.MethodPost, "/api/clients", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/ws/ledger", nil)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestLedgerAPI_FieldOperations(t *testing.T) {
	app := newApp(t)
	fx := seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/devices", map[string]string{"imei": "35209900176148"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/devices", map[string]string{"imei": "352099001761481", "model": "FMB920"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	device := decode[dto.DeviceResponse](t, resp).Data

	resp = doJSON(t, app, http.MethodPost, "/api/installers", map[string]string{"name": "Youssef", "city": "Casablanca"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	installer := decode[dto.InstallerResponse](t, resp).Data

	resp = doJSON(t, app, http.MethodPost, "/api/installations", map[string]interface{}{
		"client_id": fx.client.Id, "installer_id": installer.Id, "device_id": device.Id, "date": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	installation := decode[dto.InstallationResponse](t, resp).Data
	assert.Equal(t, "pending", installation.Status)

	resp = doJSON(t, app, http.MethodGet, "/api/installations?client_id="+fx.client.Id.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.InstallationResponse](t, resp).Data, 1)

	resp = doJSON(t, app, http.MethodDelete, "/api/devices/"+device.Id.String(), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
