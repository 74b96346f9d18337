package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	Id          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
