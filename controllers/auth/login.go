package auth

import (
	"net/http"

	"github.com/JosephChoi/abcbond-api/database"
	"github.com/JosephChoi/abcbond-api/middleware"
	"github.com/JosephChoi/abcbond-api/services"
	"github.com/JosephChoi/abcbond-api/utils"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
//
// Login maps its failure cases explicitly instead of going through the
// central translator: missing fields are 400, a failed match is 401.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Username == "" || req.Password == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Username and password are required",
		})
		return
	}

	db := database.DB
	stored, err := services.NewUserService(db).GetByUsername(req.Username)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if stored != nil {
		if locked, retry := middleware.IsAccountLocked(stored.ID); locked {
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIError{
				Error:   "Too Many Requests",
				Message: "Too many login attempts, try again in " + retry.Round(1e9).String(),
			})
			return
		}
	}

	user, err := services.NewAuthService(db).Authenticate(req.Username, req.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if user == nil {
		if stored != nil {
			middleware.RecordFailedLogin(stored.ID)
		}
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIError{
			Error:   "Authentication Failed",
			Message: "Invalid username or password",
		})
		return
	}
	middleware.ResetFailedLogin(user.ID)

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"name":     user.Name,
		},
		"expiresIn": "24h",
	})
}
