package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shop"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name       string `gorm:"type:varchar(255);not null;index"`
	Timezone   string `gorm:"type:varchar(64);not null"`
	OwnerToken string `gorm:"type:varchar(255);not null;index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *shop.Customer {
	return &shop.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Timezone:   m.Timezone,
		OwnerToken: m.OwnerToken,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *shop.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Timezone = c.Timezone
	m.OwnerToken = c.OwnerToken
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *shop.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// BasketModel is the persistence model for the ShoppingBasket domain entity.
// The customer foreign key cascades deletes down to baskets; the constraint
// lives in the SQL migrations.
type BasketModel struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'NEW'"`
	StatusDate time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BasketModel) TableName() string {
	return "shopping_baskets"
}

// ToDomain converts the persistence model to a domain ShoppingBasket entity.
func (m *BasketModel) ToDomain() *shop.ShoppingBasket {
	return &shop.ShoppingBasket{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		Status:     shop.BasketStatus(m.Status),
		StatusDate: m.StatusDate,
	}
}

// FromDomain populates the persistence model from a domain ShoppingBasket entity.
func (m *BasketModel) FromDomain(b *shop.ShoppingBasket) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.CustomerID = b.CustomerID
	m.Status = string(b.Status)
	m.StatusDate = b.StatusDate
}

// BasketModelFromDomain creates a new persistence model from a domain ShoppingBasket entity.
func BasketModelFromDomain(b *shop.ShoppingBasket) *BasketModel {
	m := &BasketModel{}
	m.FromDomain(b)
	return m
}

// ItemModel is the persistence model for the Item domain entity.
// The basket foreign key cascades deletes down to items; the constraint
// lives in the SQL migrations.
type ItemModel struct {
	BaseModel
	BasketID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(255);not null"`
	Amount      int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *shop.Item {
	return &shop.Item{
		BaseEntity:  m.BaseModel.ToDomain(),
		BasketID:    m.BasketID,
		Description: m.Description,
		Amount:      m.Amount,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(i *shop.Item) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.BasketID = i.BasketID
	m.Description = i.Description
	m.Amount = i.Amount
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(i *shop.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}
