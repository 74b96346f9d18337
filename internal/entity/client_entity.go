package entity

import (
	"time"

	"github.com/google/uuid"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

func (s ClientStatus) Valid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

type Client struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Status    ClientStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
