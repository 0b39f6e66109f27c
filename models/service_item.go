package models

import "time"

// ServiceItem is one row of the public services listing. It is a marketing
// catalog only: checkout and invoicing price against the canonical price
// table, not against these rows.
type ServiceItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `gorm:"column:image_url;size:512" json:"image_url"`
	Available   bool      `gorm:"default:true" json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
