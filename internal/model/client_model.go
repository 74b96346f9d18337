package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(50)"`
	Status    string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Client) TableName() string {
	return "clients"
}

type Car struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Brand        string    `gorm:"type:varchar(100);not null"`
	Model        string    `gorm:"type:varchar(100);not null"`
	LicensePlate string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status       string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Car) TableName() string {
	return "cars"
}
