// Package domain contains read models for the dashboard overview.
package domain

import "github.com/bwmarrin/snowflake"

// RevenuePoint is a read-only aggregate sourced entirely from the revenue
// table; this layer never derives it.
type RevenuePoint struct {
	Month   string `gorm:"primaryKey" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}

// TableName sets the database table name.
func (RevenuePoint) TableName() string { return "revenue" }

// LatestInvoice is one of the five most recent invoices joined with its
// customer, with the amount already rendered as display currency.
type LatestInvoice struct {
	ID       snowflake.ID `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	ImageURL string       `json:"image_url"`
	Amount   string       `json:"amount"`
}

// CardData carries the four dashboard summary cards.
type CardData struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}
