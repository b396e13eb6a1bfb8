package users

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JosephChoi/abcbond-api/database"
	"github.com/JosephChoi/abcbond-api/middleware"
	"github.com/JosephChoi/abcbond-api/services"
	"github.com/JosephChoi/abcbond-api/utils"
)

type CreateUserInvestmentRequest struct {
	InvestmentID   uint    `json:"investment_id"`
	InvestedAmount float64 `json:"invested_amount"`
}

type UpdateUserInvestmentRequest struct {
	InvestedAmount float64 `json:"invested_amount"`
}

func investmentIDVar(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, utils.NewValidationError("Invalid investment id"))
		return 0, false
	}
	return uint(id), true
}

// GET /user-investments/my
func MyInvestmentsHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	positions, err := services.NewUserInvestmentService(database.DB).ListByUser(identity.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteList(w, positions, len(positions))
}

// GET /user-investments/my/stats
func MyStatsHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	stats, err := services.NewUserInvestmentService(database.DB).Stats(identity.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: stats})
}

// GET /user-investments/{id}/investors
func InvestorsHandler(w http.ResponseWriter, r *http.Request, _ utils.Identity) {
	investmentID, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	investors, err := services.NewUserInvestmentService(database.DB).ListInvestors(investmentID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteList(w, investors, len(investors))
}

// POST /user-investments
func CreateUserInvestmentHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	var req CreateUserInvestmentRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if req.InvestmentID == 0 || req.InvestedAmount == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "investment_id and invested_amount are required",
		})
		return
	}

	position, err := services.NewUserInvestmentService(database.DB).Create(identity.ID, req.InvestmentID, req.InvestedAmount)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Investment created successfully",
		Data:    position,
	})
}

// PUT /user-investments/{id}
func UpdateUserInvestmentHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	investmentID, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	var req UpdateUserInvestmentRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if req.InvestedAmount == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "invested_amount is required",
		})
		return
	}

	if err := services.NewUserInvestmentService(database.DB).UpdateAmount(identity.ID, investmentID, req.InvestedAmount); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Investment amount updated successfully",
	})
}

// POST /user-investments/{id}/cancel
func CancelUserInvestmentHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	investmentID, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	if err := services.NewUserInvestmentService(database.DB).Cancel(identity.ID, investmentID); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Investment cancelled successfully",
	})
}

// DELETE /user-investments/{id}
func DeleteUserInvestmentHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	investmentID, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	if err := services.NewUserInvestmentService(database.DB).Delete(identity.ID, investmentID); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User investment deleted successfully",
	})
}
