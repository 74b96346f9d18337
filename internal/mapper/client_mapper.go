package mapper

import (
	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/model"
)

type ClientMapper struct{}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{}
}

func (m *ClientMapper) ToEntity(c *model.Client) *entity.Client {
	if c == nil {
		return nil
	}
	return &entity.Client{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    entity.ClientStatus(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ClientMapper) ToModel(c *entity.Client) *model.Client {
	if c == nil {
		return nil
	}
	return &model.Client{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type CarMapper struct{}

func NewCarMapper() *CarMapper {
	return &CarMapper{}
}

func (m *CarMapper) ToEntity(c *model.Car) *entity.Car {
	if c == nil {
		return nil
	}
	return &entity.Car{
		Id:           c.Id,
		ClientId:     c.ClientId,
		Brand:        c.Brand,
		Model:        c.Model,
		LicensePlate: c.LicensePlate,
		Status:       entity.CarStatus(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *CarMapper) ToModel(c *entity.Car) *model.Car {
	if c == nil {
		return nil
	}
	return &model.Car{
		Id:           c.Id,
		ClientId:     c.ClientId,
		Brand:        c.Brand,
		Model:        c.Model,
		LicensePlate: c.LicensePlate,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
