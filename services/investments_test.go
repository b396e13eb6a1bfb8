package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/JosephChoi/abcbond-api/models"
	"github.com/JosephChoi/abcbond-api/utils"
)

func TestCreateInvestment_MissingRequiredFields(t *testing.T) {
	db := newTestDB(t)
	_, err := NewInvestmentService(db).Create(CreateInvestmentInput{Name: "only a name"})
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListInvestments_FiltersAndOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvestmentService(db)

	first := seedInvestment(t, db, "Tower A", 8, "active")
	seedInvestment(t, db, "Tower B", 9, "completed")
	third := seedInvestment(t, db, "Tower C", 10, "active")
	if _, err := svc.Update(third.ID, map[string]interface{}{"type": "office"}); err != nil {
		t.Fatalf("update type: %v", err)
	}
	// make creation order unambiguous for the DESC sort
	if err := db.Model(&models.Investment{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	list, err := svc.List(InvestmentFilters{Status: "active"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 active investments, got %d", len(list))
	}
	if list[0].Name != "Tower C" || list[1].Name != "Tower A" {
		t.Fatalf("expected newest first, got %s then %s", list[0].Name, list[1].Name)
	}

	list, err = svc.List(InvestmentFilters{Status: "active", Type: "office"})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Tower C" {
		t.Fatalf("expected only Tower C, got %+v", list)
	}
}

func TestGetInvestment_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := NewInvestmentService(db).GetByID(12345)
	var nfe *utils.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestInvestment_JSONFieldsRoundtrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvestmentService(db)

	inv, err := svc.Create(CreateInvestmentInput{
		Name:           "Doc Tower",
		Location:       "Busan",
		Address:        "1 Harbor Rd",
		TotalAmount:    500000,
		ExpectedReturn: 7.5,
		StartDate:      "2024-03-01",
		EndDate:        "2025-03-01",
		Details:        json.RawMessage(`{"floors":12,"parking":true}`),
		Images:         json.RawMessage(`["a.jpg","b.jpg"]`),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(inv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var details map[string]interface{}
	if err := json.Unmarshal(got.Details, &details); err != nil {
		t.Fatalf("details not rehydrated: %v", err)
	}
	if details["floors"].(float64) != 12 {
		t.Fatalf("details lost content: %+v", details)
	}
	var images []string
	if err := json.Unmarshal(got.Images, &images); err != nil {
		t.Fatalf("images not rehydrated: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
}

func TestUpdateInvestment_NoRecognizedFields(t *testing.T) {
	db := newTestDB(t)
	inv := seedInvestment(t, db, "Tower U", 8, "active")

	_, err := NewInvestmentService(db).Update(inv.ID, map[string]interface{}{"bogus": 1})
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateInvestment_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := NewInvestmentService(db).Update(777, map[string]interface{}{"name": "x"})
	var nfe *utils.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteInvestment_RefusedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "frank")
	inv := seedInvestment(t, db, "Tower D", 8, "active")

	if _, err := NewUserInvestmentService(db).Create(user.ID, inv.ID, 1000); err != nil {
		t.Fatalf("open position: %v", err)
	}

	svc := NewInvestmentService(db)
	err := svc.Delete(inv.ID)
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError while referenced, got %v", err)
	}

	if err := NewUserInvestmentService(db).Delete(user.ID, inv.ID); err != nil {
		t.Fatalf("remove position: %v", err)
	}
	if err := svc.Delete(inv.ID); err != nil {
		t.Fatalf("delete after positions removed: %v", err)
	}
	if _, err := svc.GetByID(inv.ID); err == nil {
		t.Fatal("investment still present after delete")
	}
}

func TestAddMonthlyInterest(t *testing.T) {
	db := newTestDB(t)
	inv := seedInvestment(t, db, "Tower M", 8, "active")
	svc := NewInvestmentService(db)

	if _, err := svc.AddMonthlyInterest(inv.ID, "2024-1", 100); err == nil {
		t.Fatal("expected ValidationError for malformed month")
	} else {
		var ve *utils.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	}

	if _, err := svc.AddMonthlyInterest(inv.ID, "2024-06", 100); err != nil {
		t.Fatalf("add interest: %v", err)
	}

	_, err := svc.AddMonthlyInterest(inv.ID, "2024-06", 200)
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for duplicate month, got %v", err)
	}

	// history is embedded ascending by month
	if _, err := svc.AddMonthlyInterest(inv.ID, "2024-03", 50); err != nil {
		t.Fatalf("add earlier month: %v", err)
	}
	got, err := svc.GetByID(inv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.MonthlyInterest) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.MonthlyInterest))
	}
	if got.MonthlyInterest[0].Month != "2024-03" || got.MonthlyInterest[1].Month != "2024-06" {
		t.Fatalf("history not ascending: %+v", got.MonthlyInterest)
	}
}
