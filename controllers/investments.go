package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JosephChoi/abcbond-api/database"
	"github.com/JosephChoi/abcbond-api/middleware"
	"github.com/JosephChoi/abcbond-api/services"
	"github.com/JosephChoi/abcbond-api/utils"
)

type AddMonthlyInterestRequest struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

func investmentIDVar(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, utils.NewValidationError("Invalid investment id"))
		return 0, false
	}
	return uint(id), true
}

// GET /investments?status=&type=
func ListInvestmentsHandler(w http.ResponseWriter, r *http.Request) {
	filters := services.InvestmentFilters{
		Status: r.URL.Query().Get("status"),
		Type:   r.URL.Query().Get("type"),
	}
	investments, err := services.NewInvestmentService(database.DB).List(filters)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteList(w, investments, len(investments))
}

// GET /investments/{id}
func GetInvestmentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	investment, err := services.NewInvestmentService(database.DB).GetByID(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: investment})
}

// POST /investments
func CreateInvestmentHandler(w http.ResponseWriter, r *http.Request, _ utils.Identity) {
	var input services.CreateInvestmentInput
	if err := middleware.DecodeJSON(w, r, &input); err != nil {
		return
	}
	investment, err := services.NewInvestmentService(database.DB).Create(input)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Investment created successfully",
		Data:    investment,
	})
}

// PUT /investments/{id}
func UpdateInvestmentHandler(w http.ResponseWriter, r *http.Request, _ utils.Identity) {
	id, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := middleware.DecodeJSON(w, r, &data); err != nil {
		return
	}
	investment, err := services.NewInvestmentService(database.DB).Update(id, data)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Investment updated successfully",
		Data:    investment,
	})
}

// DELETE /investments/{id}
func DeleteInvestmentHandler(w http.ResponseWriter, r *http.Request, _ utils.Identity) {
	id, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	if err := services.NewInvestmentService(database.DB).Delete(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Investment deleted successfully",
	})
}

// POST /investments/{id}/monthly-interests
func AddMonthlyInterestHandler(w http.ResponseWriter, r *http.Request, _ utils.Identity) {
	id, ok := investmentIDVar(w, r)
	if !ok {
		return
	}
	var req AddMonthlyInterestRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Month == "" || req.Amount == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Month and amount are required",
		})
		return
	}

	entry, err := services.NewInvestmentService(database.DB).AddMonthlyInterest(id, req.Month, req.Amount)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Monthly interest added successfully",
		Data:    entry,
	})
}
