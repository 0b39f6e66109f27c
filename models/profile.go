package models

import "time"

// Profile is the display profile keyed by account id. A missing row is
// created on first access with defaults taken from the token claims.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID string    `gorm:"column:account_id;uniqueIndex;size:64" json:"account_id"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Email     string    `gorm:"size:150" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Vehicle   string    `gorm:"size:255" json:"vehicle"`
	AvatarURL string    `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
