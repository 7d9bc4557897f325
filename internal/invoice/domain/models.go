// Package domain contains persistence models for invoices.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status represents invoice lifecycle states.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// DateLayout is the calendar-date format stored on invoices.
const DateLayout = "2006-01-02"

// Invoice represents a stored invoice. Amount is kept in minor currency
// units (cents). Date is assigned at creation and never changed on update.
type Invoice struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id"`
	Amount     int64        `gorm:"not null" json:"amount"`
	Status     Status       `gorm:"type:text;not null" json:"status"`
	Date       string       `gorm:"type:text;not null" json:"date"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// TableRow is a row on the paginated invoices table, joined with its
// customer. Amount stays in cents; the rendering layer formats it.
type TableRow struct {
	ID       snowflake.ID `json:"id"`
	Amount   int64        `json:"amount"`
	Date     string       `json:"date"`
	Status   Status       `json:"status"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	ImageURL string       `json:"image_url"`
}

// Form is a single invoice shaped for an editable form. Amount is converted
// back to major units since it feeds a numeric input, not display text.
type Form struct {
	ID         snowflake.ID `json:"id"`
	CustomerID snowflake.ID `json:"customer_id"`
	Amount     float64      `json:"amount"`
	Status     Status       `json:"status"`
}

// Input carries raw, string-valued form fields for create and update.
// ID and date are system-assigned and never user-entered.
type Input struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}
