package users

import (
	"encoding/json"
	"net/http"

	"github.com/JosephChoi/abcbond-api/database"
	"github.com/JosephChoi/abcbond-api/services"
	"github.com/JosephChoi/abcbond-api/utils"
)

// GET /users/profile
func GetProfileHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	user, err := services.NewUserService(database.DB).GetByID(identity.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: user})
}

// PUT /users/profile
//
// Partial update: unknown keys are ignored, an update set that touches no
// allowed field is rejected.
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Invalid JSON body",
		})
		return
	}

	user, err := services.NewUserService(database.DB).Update(identity.ID, data)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Profile updated successfully",
		Data:    user,
	})
}
