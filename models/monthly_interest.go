package models

import "time"

// MonthlyInterest records a paid interest amount for one investment and one
// calendar month ("YYYY-MM"). One row per (investment, month).
type MonthlyInterest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InvestmentID uint      `gorm:"not null;uniqueIndex:idx_investment_month" json:"investment_id"`
	Month        string    `gorm:"size:7;not null;uniqueIndex:idx_investment_month" json:"month"`
	Amount       float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

func (MonthlyInterest) TableName() string {
	return "monthly_interests"
}
