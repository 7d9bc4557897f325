// Package domain contains persistence models for customers.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer is maintained externally and read-only from this layer.
type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Email     string       `gorm:"not null" json:"email"`
	ImageURL  string       `gorm:"column:image_url" json:"image_url"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// Field is the minimal projection used by selector widgets.
type Field struct {
	ID   snowflake.ID `json:"id"`
	Name string       `json:"name"`
}

// SummaryRow is the raw grouped join result before money formatting.
type SummaryRow struct {
	ID            snowflake.ID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

// Summary is a customer row on the customers table view, with invoice
// totals rendered as display currency.
type Summary struct {
	ID            snowflake.ID `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	ImageURL      string       `json:"image_url"`
	TotalInvoices int64        `json:"total_invoices"`
	TotalPending  string       `json:"total_pending"`
	TotalPaid     string       `json:"total_paid"`
}
