package apperror

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", Validation("amount %s exceeds remaining %s", "500", "200"), http.StatusBadRequest, "amount 500 exceeds remaining 200"},
		{"not found", NotFound("subscription", 42), http.StatusNotFound, "subscription 42 not found"},
		{"conflict", Conflict("client still owns %d subscriptions", 2), http.StatusConflict, "client still owns 2 subscriptions"},
		{"storage", Storage(errors.New("disk full"), "create payment"), http.StatusInternalServerError, "internal error"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.message, Message(tt.err))
		})
	}
}

func TestStorage_KeepsExistingKind(t *testing.T) {
	nf := NotFound("payment", "x")
	wrapped := Storage(nf, "update payment")

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsStorage(wrapped))
	assert.Nil(t, Storage(nil, "noop"))

	st := Storage(errors.New("connection reset"), "list payments")
	assert.True(t, IsStorage(st))
	assert.Contains(t, st.Error(), "list payments")
}

func TestKindsSurviveWrapping(t *testing.T) {
	err := errors.Wrap(Validation("bad"), "renew subscription")
	assert.True(t, IsValidation(err))
	assert.False(t, IsConflict(err))
}
