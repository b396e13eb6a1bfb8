package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JosephChoi/abcbond-api/controllers"
	"github.com/JosephChoi/abcbond-api/middleware"
)

// InvestmentsRoutes registers the catalog routes. Reads are public; every
// mutation requires a token.
func InvestmentsRoutes(r *mux.Router) {
	// Public reads
	r.Handle("/investments", http.HandlerFunc(controllers.ListInvestmentsHandler)).Methods(http.MethodGet)
	r.Handle("/investments/{id:[0-9]+}", http.HandlerFunc(controllers.GetInvestmentHandler)).Methods(http.MethodGet)

	// Token-gated mutations
	r.Handle("/investments", middleware.RequireAuth(controllers.CreateInvestmentHandler)).Methods(http.MethodPost)
	r.Handle("/investments/{id:[0-9]+}", middleware.RequireAuth(controllers.UpdateInvestmentHandler)).Methods(http.MethodPut)
	r.Handle("/investments/{id:[0-9]+}", middleware.RequireAuth(controllers.DeleteInvestmentHandler)).Methods(http.MethodDelete)
	r.Handle("/investments/{id:[0-9]+}/monthly-interests", middleware.RequireAuth(controllers.AddMonthlyInterestHandler)).Methods(http.MethodPost)
}
