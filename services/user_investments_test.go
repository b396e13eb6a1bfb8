package services

import (
	"errors"
	"math"
	"testing"

	"github.com/JosephChoi/abcbond-api/utils"
)

func TestCreatePosition_Validations(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "gina")
	active := seedInvestment(t, db, "Active Tower", 8, "active")
	completed := seedInvestment(t, db, "Done Tower", 8, "completed")
	svc := NewUserInvestmentService(db)

	var ve *utils.ValidationError
	var nfe *utils.NotFoundError

	if _, err := svc.Create(user.ID, active.ID, 0); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for zero amount, got %v", err)
	}
	if _, err := svc.Create(user.ID, active.ID, -5); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for negative amount, got %v", err)
	}
	if _, err := svc.Create(user.ID, 99999, 100); !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError for missing investment, got %v", err)
	}
	if _, err := svc.Create(user.ID, completed.ID, 100); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for non-active investment, got %v", err)
	}

	position, err := svc.Create(user.ID, active.ID, 100)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if position.Status != "active" {
		t.Fatalf("new position status = %s", position.Status)
	}
}

func TestCreatePosition_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "henry")
	inv := seedInvestment(t, db, "Dup Tower", 8, "active")
	svc := NewUserInvestmentService(db)

	if _, err := svc.Create(user.ID, inv.ID, 100); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(user.ID, inv.ID, 200)
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError on duplicate, got %v", err)
	}

	positions, err := svc.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("expected exactly one position, got %d", len(positions))
	}
	if positions[0].InvestmentID != inv.ID || positions[0].Name != "Dup Tower" {
		t.Fatalf("joined fields wrong: %+v", positions[0])
	}
}

func TestUpdatePositionAmount(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "iris")
	inv := seedInvestment(t, db, "Amt Tower", 8, "active")
	svc := NewUserInvestmentService(db)

	var nfe *utils.NotFoundError
	if err := svc.UpdateAmount(user.ID, inv.ID, 500); !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError before position exists, got %v", err)
	}

	if _, err := svc.Create(user.ID, inv.ID, 100); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.UpdateAmount(user.ID, inv.ID, 500); err != nil {
		t.Fatalf("update amount: %v", err)
	}

	positions, err := svc.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if positions[0].InvestedAmount != 500 {
		t.Fatalf("amount not updated: %v", positions[0].InvestedAmount)
	}
	if positions[0].Status != "active" {
		t.Fatalf("status must be untouched, got %s", positions[0].Status)
	}
}

func TestCancelPosition_RejectsSecondCancel(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "jack")
	inv := seedInvestment(t, db, "Cxl Tower", 8, "active")
	svc := NewUserInvestmentService(db)

	var nfe *utils.NotFoundError
	if err := svc.Cancel(user.ID, inv.ID); !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if _, err := svc.Create(user.ID, inv.ID, 100); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Cancel(user.ID, inv.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	err := svc.Cancel(user.ID, inv.ID)
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError on second cancel, got %v", err)
	}
}

func TestDeletePosition(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "kate")
	inv := seedInvestment(t, db, "Del Tower", 8, "active")
	svc := NewUserInvestmentService(db)

	var nfe *utils.NotFoundError
	if err := svc.Delete(user.ID, inv.ID); !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if _, err := svc.Create(user.ID, inv.ID, 100); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(user.ID, inv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	positions, err := svc.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(positions) != 0 {
		t.Fatalf("expected no positions after delete, got %d", len(positions))
	}
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "lena")
	invA := seedInvestment(t, db, "Stat A", 8, "active")
	invB := seedInvestment(t, db, "Stat B", 10, "active")
	invC := seedInvestment(t, db, "Stat C", 50, "active")
	svc := NewUserInvestmentService(db)

	if _, err := svc.Create(user.ID, invA.ID, 100); err != nil {
		t.Fatalf("create A: %v", err)
	}
	if _, err := svc.Create(user.ID, invB.ID, 200); err != nil {
		t.Fatalf("create B: %v", err)
	}
	// cancelled positions are excluded from every aggregate
	if _, err := svc.Create(user.ID, invC.ID, 10000); err != nil {
		t.Fatalf("create C: %v", err)
	}
	if err := svc.Cancel(user.ID, invC.ID); err != nil {
		t.Fatalf("cancel C: %v", err)
	}

	stats, err := svc.Stats(user.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalInvested != 300 {
		t.Fatalf("totalInvested = %v, want 300", stats.TotalInvested)
	}
	if stats.InvestmentCount != 2 {
		t.Fatalf("investmentCount = %d, want 2", stats.InvestmentCount)
	}
	// (100*8 + 200*10) / 300 = 9.333...
	if math.Abs(stats.ExpectedReturn-28.0/3.0) > 1e-9 {
		t.Fatalf("expectedReturn = %v, want %v", stats.ExpectedReturn, 28.0/3.0)
	}
	// round(100*0.08/12 + 200*0.10/12) = round(2.333) = 2
	if stats.MonthlyIncome != 2 {
		t.Fatalf("monthlyIncome = %d, want 2", stats.MonthlyIncome)
	}
}

func TestStats_EmptyIsZeroSafe(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "mona")

	stats, err := NewUserInvestmentService(db).Stats(user.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalInvested != 0 || stats.InvestmentCount != 0 || stats.ExpectedReturn != 0 || stats.MonthlyIncome != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}

func TestListInvestors(t *testing.T) {
	db := newTestDB(t)
	inv := seedInvestment(t, db, "Crowd Tower", 8, "active")
	u1 := seedUser(t, db, "nina")
	u2 := seedUser(t, db, "oscar")
	svc := NewUserInvestmentService(db)

	if _, err := svc.Create(u1.ID, inv.ID, 100); err != nil {
		t.Fatalf("create u1: %v", err)
	}
	if _, err := svc.Create(u2.ID, inv.ID, 200); err != nil {
		t.Fatalf("create u2: %v", err)
	}

	investors, err := svc.ListInvestors(inv.ID)
	if err != nil {
		t.Fatalf("investors: %v", err)
	}
	if len(investors) != 2 {
		t.Fatalf("expected 2 investors, got %d", len(investors))
	}
	for _, iv := range investors {
		if iv.Name == "" || iv.Email == "" {
			t.Fatalf("joined user fields missing: %+v", iv)
		}
	}
}
