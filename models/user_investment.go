package models

import "time"

// UserInvestment is one user's position in one investment. The composite
// unique index enforces at most one position per (user, investment) pair so
// concurrent duplicate inserts fail at the store even if both pass the
// application-level existence check.
type UserInvestment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_user_investment" json:"user_id"`
	InvestmentID   uint      `gorm:"not null;uniqueIndex:idx_user_investment" json:"investment_id"`
	InvestedAmount float64   `gorm:"type:decimal(15,2);not null" json:"invested_amount"`
	InvestedDate   time.Time `gorm:"autoCreateTime" json:"invested_date"`
	Status         string    `gorm:"size:20;default:'active';index" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserInvestment) TableName() string {
	return "user_investments"
}
