// Package directoryrepo reads customers, addresses and locations for mail payloads.
// The tables are owned by the storefront; this package never writes them outside tests.
package directoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type CustomerDTO struct {
	ID        int64  `gorm:"primaryKey"`
	FirstName string `gorm:"size:32"`
	LastName  string `gorm:"size:32"`
	Email     string `gorm:"size:96"`
	Telephone string `gorm:"size:32"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type AddressDTO struct {
	ID       int64 `gorm:"primaryKey"`
	Address1 string
	Address2 string
	City     string
	State    string
	Postcode string `gorm:"size:15"`
	Country  string
}

func (AddressDTO) TableName() string {
	return "addresses"
}

type LocationDTO struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:96"`
	Telephone string `gorm:"size:32"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// GormDirectory implements ports.Directory using GORM.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) Customer(ctx context.Context, id kernel.ID) (ports.Customer, error) {
	var dto CustomerDTO
	if err := d.first(ctx, &dto, "customer", id); err != nil {
		return ports.Customer{}, err
	}
	return ports.Customer{
		ID:        kernel.ID(dto.ID),
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Telephone: dto.Telephone,
	}, nil
}

func (d *GormDirectory) Address(ctx context.Context, id kernel.ID) (ports.Address, error) {
	var dto AddressDTO
	if err := d.first(ctx, &dto, "address", id); err != nil {
		return ports.Address{}, err
	}
	return ports.Address{
		ID:       kernel.ID(dto.ID),
		Address1: dto.Address1,
		Address2: dto.Address2,
		City:     dto.City,
		State:    dto.State,
		Postcode: dto.Postcode,
		Country:  dto.Country,
	}, nil
}

func (d *GormDirectory) Location(ctx context.Context, id kernel.ID) (ports.Location, error) {
	var dto LocationDTO
	if err := d.first(ctx, &dto, "location", id); err != nil {
		return ports.Location{}, err
	}
	return ports.Location{
		ID:        kernel.ID(dto.ID),
		Name:      dto.Name,
		Email:     dto.Email,
		Telephone: dto.Telephone,
	}, nil
}

func (d *GormDirectory) first(ctx context.Context, dest any, name string, id kernel.ID) error {
	err := d.db.WithContext(ctx).First(dest, "id = ?", id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(name, id.Int64())
	}
	return err
}
