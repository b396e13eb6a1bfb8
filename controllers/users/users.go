package users

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JosephChoi/abcbond-api/database"
	"github.com/JosephChoi/abcbond-api/services"
	"github.com/JosephChoi/abcbond-api/utils"
)

// GET /users
func ListUsersHandler(w http.ResponseWriter, r *http.Request, _ utils.Identity) {
	users, err := services.NewUserService(database.DB).List()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteList(w, users, len(users))
}

// GET /users/{id}
func GetUserHandler(w http.ResponseWriter, r *http.Request, _ utils.Identity) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, utils.NewValidationError("Invalid user id"))
		return
	}

	user, err := services.NewUserService(database.DB).GetByID(uint(id))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: user})
}
