package services

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/JosephChoi/abcbond-api/models"
	"github.com/JosephChoi/abcbond-api/utils"
)

type UserInvestmentService struct {
	db *gorm.DB
}

func NewUserInvestmentService(db *gorm.DB) *UserInvestmentService {
	return &UserInvestmentService{db: db}
}

// UserPosition is a position row joined with its investment's fields.
type UserPosition struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	InvestmentID   uint      `json:"investment_id"`
	InvestedAmount float64   `json:"invested_amount"`
	InvestedDate   time.Time `json:"invested_date"`
	Status         string    `json:"status"`

	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Address          string  `json:"address"`
	TotalAmount      float64 `json:"total_amount"`
	ExpectedReturn   float64 `json:"expected_return"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Image            *string `json:"image,omitempty"`
	InvestmentStatus string  `json:"investment_status"`
	Type             string  `json:"type"`
}

// Investor is a position row joined with the investing user's name and email.
type Investor struct {
	UserID         uint      `json:"user_id"`
	InvestedAmount float64   `json:"invested_amount"`
	InvestedDate   time.Time `json:"invested_date"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
}

// InvestmentStats aggregates a user's active positions.
type InvestmentStats struct {
	TotalInvested   float64 `json:"totalInvested"`
	InvestmentCount int64   `json:"investmentCount"`
	ExpectedReturn  float64 `json:"expectedReturn"`
	MonthlyIncome   int64   `json:"monthlyIncome"`
}

func (s *UserInvestmentService) ListByUser(userID uint) ([]UserPosition, error) {
	var rows []UserPosition
	err := s.db.Table("user_investments ui").
		Select("ui.id, ui.user_id, ui.investment_id, ui.invested_amount, ui.invested_date, ui.status, "+
			"i.name, i.location, i.address, i.total_amount, i.expected_return, i.start_date, i.end_date, "+
			"i.image, i.status AS investment_status, i.type").
		Joins("JOIN investments i ON ui.investment_id = i.id").
		Where("ui.user_id = ?", userID).
		Order("ui.invested_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *UserInvestmentService) ListInvestors(investmentID uint) ([]Investor, error) {
	var rows []Investor
	err := s.db.Table("user_investments ui").
		Select("ui.user_id, ui.invested_amount, ui.invested_date, u.name, u.email").
		Joins("JOIN users u ON ui.user_id = u.id").
		Where("ui.investment_id = ?", investmentID).
		Order("ui.invested_date DESC").
		Scan(&rows).Error
	return rows, err
}

// Stats aggregates over active positions only. The weighted return is
// Σ(amount·rate)/Σ(amount), 0 when the user has no active positions; monthly
// income is Σ(amount·rate/100/12) rounded to the nearest unit.
func (s *UserInvestmentService) Stats(userID uint) (*InvestmentStats, error) {
	stats := &InvestmentStats{}

	if err := s.db.Model(&models.UserInvestment{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Select("COALESCE(SUM(invested_amount),0)").
		Scan(&stats.TotalInvested).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.UserInvestment{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Count(&stats.InvestmentCount).Error; err != nil {
		return nil, err
	}

	var weighted sql.NullFloat64
	if err := s.db.Table("user_investments ui").
		Select("SUM(ui.invested_amount * i.expected_return) / SUM(ui.invested_amount)").
		Joins("JOIN investments i ON ui.investment_id = i.id").
		Where("ui.user_id = ? AND ui.status = ?", userID, "active").
		Scan(&weighted).Error; err != nil {
		return nil, err
	}
	if weighted.Valid {
		stats.ExpectedReturn = weighted.Float64
	}

	var monthly sql.NullFloat64
	if err := s.db.Table("user_investments ui").
		Select("SUM(ui.invested_amount * i.expected_return / 100 / 12)").
		Joins("JOIN investments i ON ui.investment_id = i.id").
		Where("ui.user_id = ? AND ui.status = ?", userID, "active").
		Scan(&monthly).Error; err != nil {
		return nil, err
	}
	if monthly.Valid {
		stats.MonthlyIncome = int64(math.Round(monthly.Float64))
	}

	return stats, nil
}

// Create opens a position. The existence checks and the insert run inside one
// transaction; the composite unique index on (user_id, investment_id)
// backstops concurrent duplicate inserts.
func (s *UserInvestmentService) Create(userID, investmentID uint, amount float64) (*models.UserInvestment, error) {
	if amount <= 0 {
		return nil, utils.NewValidationError("Invalid investment amount")
	}

	var position models.UserInvestment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inv models.Investment
		if err := tx.Select("id", "status").First(&inv, investmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("Investment not found")
			}
			return err
		}
		if inv.Status != "active" {
			return utils.NewValidationError("Investment is not active")
		}

		var existing models.UserInvestment
		err := tx.Where("user_id = ? AND investment_id = ?", userID, investmentID).First(&existing).Error
		if err == nil {
			return utils.NewValidationError("Already invested in this investment")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		position = models.UserInvestment{
			UserID:         userID,
			InvestmentID:   investmentID,
			InvestedAmount: amount,
			Status:         "active",
		}
		if err := tx.Create(&position).Error; err != nil {
			if utils.IsDuplicateKeyError(err) {
				return utils.NewValidationError("Already invested in this investment")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// UpdateAmount overwrites the invested amount; status is untouched.
func (s *UserInvestmentService) UpdateAmount(userID, investmentID uint, amount float64) error {
	if amount <= 0 {
		return utils.NewValidationError("Invalid investment amount")
	}
	if err := s.find(userID, investmentID, nil); err != nil {
		return err
	}
	return s.db.Model(&models.UserInvestment{}).
		Where("user_id = ? AND investment_id = ?", userID, investmentID).
		Update("invested_amount", amount).Error
}

// Cancel marks the position cancelled. Cancelling twice is rejected.
func (s *UserInvestmentService) Cancel(userID, investmentID uint) error {
	var position models.UserInvestment
	if err := s.find(userID, investmentID, &position); err != nil {
		return err
	}
	if position.Status == "cancelled" {
		return utils.NewValidationError("Investment already cancelled")
	}
	return s.db.Model(&models.UserInvestment{}).
		Where("user_id = ? AND investment_id = ?", userID, investmentID).
		Update("status", "cancelled").Error
}

// Delete hard-deletes the position row.
func (s *UserInvestmentService) Delete(userID, investmentID uint) error {
	if err := s.find(userID, investmentID, nil); err != nil {
		return err
	}
	return s.db.
		Where("user_id = ? AND investment_id = ?", userID, investmentID).
		Delete(&models.UserInvestment{}).Error
}

func (s *UserInvestmentService) find(userID, investmentID uint, dst *models.UserInvestment) error {
	var position models.UserInvestment
	if dst == nil {
		dst = &position
	}
	err := s.db.Where("user_id = ? AND investment_id = ?", userID, investmentID).First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("User investment not found")
	}
	return err
}
