package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MultilingualText is a text field carried in all three site languages.
// Partial translations are rejected at the transport boundary: the three
// values always travel together.
type MultilingualText struct {
	UA string `json:"ua" bson:"ua" validate:"required"`
	RU string `json:"ru" bson:"ru" validate:"required"`
	EN string `json:"en" bson:"en" validate:"required"`
}

// Service is a heating service offered by the company.
type Service struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       MultilingualText   `json:"title" bson:"title" validate:"required"`
	Description MultilingualText   `json:"description" bson:"description" validate:"required"`
	Icon        string             `json:"icon" bson:"icon" validate:"required"`
	Order       int                `json:"order" bson:"order"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Sector is a market sector the company serves (hotels, medical, ...).
type Sector struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        MultilingualText   `json:"name" bson:"name" validate:"required"`
	Description MultilingualText   `json:"description" bson:"description" validate:"required"`
	Image       string             `json:"image" bson:"image" validate:"required"`
	Stats       string             `json:"stats,omitempty" bson:"stats,omitempty"`
	Order       int                `json:"order" bson:"order"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Advantage is a selling point shown on the landing page.
type Advantage struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       MultilingualText   `json:"title" bson:"title" validate:"required"`
	Description MultilingualText   `json:"description" bson:"description" validate:"required"`
	Icon        string             `json:"icon" bson:"icon" validate:"required"`
	Order       int                `json:"order" bson:"order"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Solution is a packaged heating solution with budget and timeline hints.
type Solution struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       MultilingualText   `json:"title" bson:"title" validate:"required"`
	Description MultilingualText   `json:"description" bson:"description" validate:"required"`
	PowerRange  string             `json:"power_range" bson:"power_range" validate:"required"`
	Brands      string             `json:"brands" bson:"brands" validate:"required"`
	Timeline    string             `json:"timeline" bson:"timeline" validate:"required"`
	BudgetRange string             `json:"budget_range" bson:"budget_range" validate:"required"`
	Icon        string             `json:"icon" bson:"icon" validate:"required"`
	Popular     bool               `json:"popular" bson:"popular"`
	Order       int                `json:"order" bson:"order"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Project is a completed reference installation.
type Project struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       MultilingualText   `json:"title" bson:"title" validate:"required"`
	Sector      string             `json:"sector" bson:"sector" validate:"required"`
	Power       string             `json:"power" bson:"power" validate:"required"`
	Savings     string             `json:"savings" bson:"savings" validate:"required"`
	Duration    string             `json:"duration" bson:"duration" validate:"required"`
	FuelType    string             `json:"fuel_type" bson:"fuel_type" validate:"required"`
	Image       string             `json:"image" bson:"image" validate:"required"`
	Description MultilingualText   `json:"description" bson:"description" validate:"required"`
	Featured    bool               `json:"featured" bson:"featured"`
	Order       int                `json:"order" bson:"order"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// FAQ is a frequently asked question with its answer.
type FAQ struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Question  MultilingualText   `json:"question" bson:"question" validate:"required"`
	Answer    MultilingualText   `json:"answer" bson:"answer" validate:"required"`
	Order     int                `json:"order" bson:"order"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// SiteInfo is the singleton company contact card.
type SiteInfo struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CompanyName    string             `json:"company_name" bson:"company_name"`
	Phone          string             `json:"phone" bson:"phone"`
	Email          string             `json:"email" bson:"email"`
	Address        string             `json:"address" bson:"address"`
	WorkingHours   string             `json:"working_hours" bson:"working_hours"`
	EmergencyPhone string             `json:"emergency_phone" bson:"emergency_phone"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
