package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/JosephChoi/abcbond-api/models"
	"github.com/JosephChoi/abcbond-api/utils"
)

type InvestmentService struct {
	db *gorm.DB
}

func NewInvestmentService(db *gorm.DB) *InvestmentService {
	return &InvestmentService{db: db}
}

// Fields a catalog update may touch, by column name.
var investmentUpdatableFields = []string{
	"name", "location", "address", "total_amount", "expected_return",
	"start_date", "end_date", "image", "status", "type", "description",
	"property_value", "kb_valuation", "senior_loan", "ltv",
	"details", "images", "registration_document",
}

// Columns holding serialized JSON documents.
var investmentJSONFields = map[string]bool{
	"details":               true,
	"images":                true,
	"registration_document": true,
}

type InvestmentFilters struct {
	Status string
	Type   string
}

// InvestmentView is an Investment with its JSON text columns rehydrated and,
// on detail reads, the monthly interest history attached.
type InvestmentView struct {
	models.Investment
	Details              json.RawMessage        `json:"details,omitempty"`
	Images               json.RawMessage        `json:"images,omitempty"`
	RegistrationDocument json.RawMessage        `json:"registrationDocument,omitempty"`
	MonthlyInterest      []MonthlyInterestEntry `json:"monthlyInterest,omitempty"`
}

type MonthlyInterestEntry struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type CreateInvestmentInput struct {
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Address        string  `json:"address"`
	TotalAmount    float64 `json:"total_amount"`
	ExpectedReturn float64 `json:"expected_return"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`

	Image                *string         `json:"image"`
	Status               string          `json:"status"`
	Type                 string          `json:"type"`
	Description          *string         `json:"description"`
	PropertyValue        *float64        `json:"property_value"`
	KBValuation          *float64        `json:"kb_valuation"`
	SeniorLoan           *float64        `json:"senior_loan"`
	LTV                  *float64        `json:"ltv"`
	Details              json.RawMessage `json:"details"`
	Images               json.RawMessage `json:"images"`
	RegistrationDocument json.RawMessage `json:"registration_document"`
}

func rehydrate(inv models.Investment) InvestmentView {
	view := InvestmentView{Investment: inv}
	if inv.Details != nil && *inv.Details != "" {
		view.Details = json.RawMessage(*inv.Details)
	}
	if inv.Images != nil && *inv.Images != "" {
		view.Images = json.RawMessage(*inv.Images)
	}
	if inv.RegistrationDocument != nil && *inv.RegistrationDocument != "" {
		view.RegistrationDocument = json.RawMessage(*inv.RegistrationDocument)
	}
	return view
}

// List returns the catalog filtered by optional status/type equality,
// newest-created first.
func (s *InvestmentService) List(filters InvestmentFilters) ([]InvestmentView, error) {
	q := s.db.Model(&models.Investment{})
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.Type != "" {
		q = q.Where("type = ?", filters.Type)
	}

	var rows []models.Investment
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]InvestmentView, 0, len(rows))
	for _, inv := range rows {
		views = append(views, rehydrate(inv))
	}
	return views, nil
}

// GetByID returns the investment with its full monthly interest history,
// ascending by month.
func (s *InvestmentService) GetByID(investmentID uint) (*InvestmentView, error) {
	var inv models.Investment
	if err := s.db.First(&inv, investmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("Investment not found")
		}
		return nil, err
	}

	var interests []MonthlyInterestEntry
	if err := s.db.Model(&models.MonthlyInterest{}).
		Select("month", "amount").
		Where("investment_id = ?", investmentID).
		Order("month ASC").
		Scan(&interests).Error; err != nil {
		return nil, err
	}

	view := rehydrate(inv)
	view.MonthlyInterest = interests
	return &view, nil
}

func (s *InvestmentService) Create(input CreateInvestmentInput) (*InvestmentView, error) {
	if input.Name == "" || input.Location == "" || input.Address == "" ||
		input.TotalAmount == 0 || input.ExpectedReturn == 0 ||
		input.StartDate == "" || input.EndDate == "" {
		return nil, utils.NewValidationError("Required fields are missing")
	}

	inv := models.Investment{
		Name:           input.Name,
		Location:       input.Location,
		Address:        input.Address,
		TotalAmount:    input.TotalAmount,
		ExpectedReturn: input.ExpectedReturn,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Image:          input.Image,
		Status:         "active",
		Type:           "apartment",
		Description:    input.Description,
		PropertyValue:  input.PropertyValue,
		KBValuation:    input.KBValuation,
		SeniorLoan:     input.SeniorLoan,
		LTV:            input.LTV,
	}
	if input.Status != "" {
		inv.Status = input.Status
	}
	if input.Type != "" {
		inv.Type = input.Type
	}
	if len(input.Details) > 0 {
		text := string(input.Details)
		inv.Details = &text
	}
	if len(input.Images) > 0 {
		text := string(input.Images)
		inv.Images = &text
	}
	if len(input.RegistrationDocument) > 0 {
		text := string(input.RegistrationDocument)
		inv.RegistrationDocument = &text
	}

	if err := s.db.Create(&inv).Error; err != nil {
		return nil, err
	}
	return s.GetByID(inv.ID)
}

// Update applies a partial update over the allow-list. JSON document fields
// are re-serialized to text before storage.
func (s *InvestmentService) Update(investmentID uint, data map[string]interface{}) (*InvestmentView, error) {
	updates := map[string]interface{}{}
	for _, field := range investmentUpdatableFields {
		v, ok := data[field]
		if !ok {
			continue
		}
		if investmentJSONFields[field] && v != nil {
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, utils.NewValidationError("Invalid value for " + field)
			}
			updates[field] = string(raw)
		} else {
			updates[field] = v
		}
	}
	if len(updates) == 0 {
		return nil, utils.NewValidationError("No fields to update")
	}

	if _, err := s.GetByID(investmentID); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Investment{}).Where("id = ?", investmentID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(investmentID)
}

// Delete removes an investment and its interest history. Deletion is refused
// while any user position still references the investment.
func (s *InvestmentService) Delete(investmentID uint) error {
	if _, err := s.GetByID(investmentID); err != nil {
		return err
	}

	var positions int64
	if err := s.db.Model(&models.UserInvestment{}).
		Where("investment_id = ?", investmentID).
		Count(&positions).Error; err != nil {
		return err
	}
	if positions > 0 {
		return utils.NewValidationError("Investment has user positions and cannot be deleted")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("investment_id = ?", investmentID).Delete(&models.MonthlyInterest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Investment{}, investmentID).Error
	})
}

func (s *InvestmentService) AddMonthlyInterest(investmentID uint, month string, amount float64) (*models.MonthlyInterest, error) {
	if _, err := s.GetByID(investmentID); err != nil {
		return nil, err
	}
	if !utils.IsValidMonth(month) {
		return nil, utils.NewValidationError("Invalid month format. Use YYYY-MM")
	}

	entry := models.MonthlyInterest{
		InvestmentID: investmentID,
		Month:        month,
		Amount:       amount,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, utils.NewValidationError("Monthly interest for this month already exists")
		}
		return nil, err
	}
	return &entry, nil
}
