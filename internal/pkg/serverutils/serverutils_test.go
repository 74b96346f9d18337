package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	State string `json:"state" validate:"omitempty,oneof=active inactive"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Name: "Atlas", Date: "2024-01-31"}))

	err := ValidateRequest(sampleRequest{Date: "31/01/2024", State: "asleep"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Date must be a date formatted as 2006-01-02")
	assert.Contains(t, err.Error(), "State must be one of [active inactive]")
}

func TestValidateRequest_FixedLengthDigits(t *testing.T) {
	type imeiRequest struct {
		Imei string `validate:"required,len=15,number"`
	}

	assert.NoError(t, ValidateRequest(imeiRequest{Imei: "352099001761481"}))

	err := ValidateRequest(imeiRequest{Imei: "35209900176148"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Imei must be exactly 15 characters")

	err = ValidateRequest(imeiRequest{Imei: "-35209900176148"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Imei must contain digits only")
}

func TestErrorHandlerMiddleware_MapsKinds(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/missing", func(*fiber.Ctx) error { return apperror.NotFound("client", 42) })
	app.Get("/conflict", func(*fiber.Ctx) error { return apperror.Conflict("plate taken") })
	app.Get("/boom", func(*fiber.Ctx) error { return apperror.Storage(errors.New("disk full"), "write") })
	app.Get("/fiber", func(*fiber.Ctx) error { return fiber.ErrUnprocessableEntity })
	app.Get("/ok", func(ctx *fiber.Ctx) error { return ctx.JSON(SuccessResponse("done", 1)) })

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/missing", 404, "client 42 not found"},
		{"/conflict", 409, "plate taken"},
		{"/boom", 500, "internal error"},
		{"/fiber", 422, "Unprocessable Entity"},
		{"/ok", 200, "done"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body BaseResponse[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, tc.status == 200, body.Success)
		})
	}
}
