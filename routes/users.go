package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/JosephChoi/abcbond-api/controllers/auth"
	"github.com/JosephChoi/abcbond-api/controllers/users"
	"github.com/JosephChoi/abcbond-api/middleware"
)

// UsersRoutes registers the auth, user and position routes.
func UsersRoutes(r *mux.Router) {
	// Rate limiter on login/register: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)

	// Auth (public)
	r.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	r.Handle("/auth/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)

	// Users (token)
	r.Handle("/users", middleware.RequireAuth(users.ListUsersHandler)).Methods(http.MethodGet)
	r.Handle("/users/profile", middleware.RequireAuth(users.GetProfileHandler)).Methods(http.MethodGet)
	r.Handle("/users/profile", middleware.RequireAuth(users.UpdateProfileHandler)).Methods(http.MethodPut)
	r.Handle("/users/profile/avatar", middleware.RequireAuth(users.UploadAvatarHandler)).Methods(http.MethodPost)
	r.Handle("/users/{id:[0-9]+}", middleware.RequireAuth(users.GetUserHandler)).Methods(http.MethodGet)

	// Positions (token)
	r.Handle("/user-investments/my", middleware.RequireAuth(users.MyInvestmentsHandler)).Methods(http.MethodGet)
	r.Handle("/user-investments/my/stats", middleware.RequireAuth(users.MyStatsHandler)).Methods(http.MethodGet)
	r.Handle("/user-investments/{id:[0-9]+}/investors", middleware.RequireAuth(users.InvestorsHandler)).Methods(http.MethodGet)
	r.Handle("/user-investments", middleware.RequireAuth(users.CreateUserInvestmentHandler)).Methods(http.MethodPost)
	r.Handle("/user-investments/{id:[0-9]+}", middleware.RequireAuth(users.UpdateUserInvestmentHandler)).Methods(http.MethodPut)
	r.Handle("/user-investments/{id:[0-9]+}/cancel", middleware.RequireAuth(users.CancelUserInvestmentHandler)).Methods(http.MethodPost)
	r.Handle("/user-investments/{id:[0-9]+}", middleware.RequireAuth(users.DeleteUserInvestmentHandler)).Methods(http.MethodDelete)
}
