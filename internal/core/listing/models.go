package listing

import (
	"time"
)

type PropertyType string

const (
	TypeApartment  PropertyType = "apartment"
	TypeVilla      PropertyType = "villa"
	TypeHouse      PropertyType = "house"
	TypeStudio     PropertyType = "studio"
	TypeOffice     PropertyType = "office"
	TypeCommercial PropertyType = "commercial"
	TypeLand       PropertyType = "land"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeVilla, TypeHouse, TypeStudio, TypeOffice, TypeCommercial, TypeLand:
		return true
	}
	return false
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
	StatusRented    Status = "rented"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusRented, StatusArchived:
		return true
	}
	return false
}

type TransactionType string

const (
	TransactionSale TransactionType = "sale"
	TransactionRent TransactionType = "rent"
)

func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionRent
}

type Condition string

const (
	ConditionNew        Condition = "new"
	ConditionExcellent  Condition = "excellent"
	ConditionGood       Condition = "good"
	ConditionToRenovate Condition = "to_renovate"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionToRenovate:
		return true
	}
	return false
}

// Property is an inventory record. OwnerID is a weak reference to a client;
// it may dangle and must be resolved explicitly.
type Property struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Type            PropertyType    `json:"type"`
	Condition       Condition       `json:"condition,omitempty"`
	TransactionType TransactionType `json:"transaction_type"`
	Status          Status          `json:"status"`
	Surface         float64         `json:"surface"`
	Price           float64         `json:"price"`
	Rooms           int             `json:"rooms,omitempty"`
	Location        string          `json:"location"`
	Features        []string        `json:"features,omitempty"`
	Photos          []string        `json:"photos,omitempty"`
	Videos          []string        `json:"videos,omitempty"`
	OwnerID         string          `json:"owner_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreatePropertyRequest struct {
	Code            string          `json:"code"`
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	Type            PropertyType    `json:"type" binding:"required"`
	Condition       Condition       `json:"condition"`
	TransactionType TransactionType `json:"transaction_type" binding:"required"`
	Status          Status          `json:"status"`
	Surface         float64         `json:"surface" binding:"min=0"`
	Price           float64         `json:"price" binding:"min=0"`
	Rooms           int             `json:"rooms"`
	Location        string          `json:"location" binding:"required"`
	Features        []string        `json:"features"`
	Photos          []string        `json:"photos"`
	Videos          []string        `json:"videos"`
	OwnerID         string          `json:"owner_id"`
}

type UpdatePropertyRequest struct {
	Title           string          `json:"title"`
	Description     *string         `json:"description"`
	Type            PropertyType    `json:"type"`
	Condition       Condition       `json:"condition"`
	TransactionType TransactionType `json:"transaction_type"`
	Status          Status          `json:"status"`
	Surface         *float64        `json:"surface"`
	Price           *float64        `json:"price"`
	Rooms           *int            `json:"rooms"`
	Location        string          `json:"location"`
	Features        *[]string       `json:"features"`
	Photos          *[]string       `json:"photos"`
	Videos          *[]string       `json:"videos"`
	OwnerID         *string         `json:"owner_id"`
}

type ListPropertiesResponse struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
}
