package models

import "time"

type Investment struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Name           string   `gorm:"size:191;not null" json:"name"`
	Location       string   `gorm:"size:191;not null" json:"location"`
	Address        string   `gorm:"size:255;not null" json:"address"`
	TotalAmount    float64  `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	ExpectedReturn float64  `gorm:"type:decimal(5,2);not null" json:"expected_return"`
	StartDate      string   `gorm:"size:20;not null" json:"start_date"`
	EndDate        string   `gorm:"size:20;not null" json:"end_date"`
	Image          *string  `gorm:"size:255" json:"image,omitempty"`
	Status         string   `gorm:"size:20;default:'active';index" json:"status"`
	Type           string   `gorm:"size:20;default:'apartment';index" json:"type"`
	Description    *string  `gorm:"type:text" json:"description,omitempty"`
	PropertyValue  *float64 `gorm:"type:decimal(15,2)" json:"property_value,omitempty"`
	KBValuation    *float64 `gorm:"column:kb_valuation;type:decimal(15,2)" json:"kb_valuation,omitempty"`
	SeniorLoan     *float64 `gorm:"type:decimal(15,2)" json:"senior_loan,omitempty"`
	LTV            *float64 `gorm:"column:ltv;type:decimal(5,2)" json:"ltv,omitempty"`

	// Nested structures stored as serialized JSON text and rehydrated on read.
	Details              *string `gorm:"type:text" json:"-"`
	Images               *string `gorm:"type:text" json:"-"`
	RegistrationDocument *string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MonthlyInterests []MonthlyInterest `gorm:"foreignKey:InvestmentID" json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}
