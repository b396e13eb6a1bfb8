package auth

import (
	"net/http"

	"github.com/JosephChoi/abcbond-api/database"
	"github.com/JosephChoi/abcbond-api/middleware"
	"github.com/JosephChoi/abcbond-api/services"
	"github.com/JosephChoi/abcbond-api/utils"
)

// POST /auth/register
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateUserInput
	if err := middleware.DecodeJSON(w, r, &input); err != nil {
		return
	}

	user, err := services.NewUserService(database.DB).Create(input)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}
