package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/JosephChoi/abcbond-api/controllers"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// InitRouter builds the router. Authorization is declared per route: every
// registration below states whether the route is public or token-gated, so
// there is no prefix-based auth matching anywhere.
func InitRouter() *mux.Router {
	r := mux.NewRouter()

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	origins := []string{"http://localhost:3000", "http://localhost:8080", "http://127.0.0.1:3000", "http://127.0.0.1:8080"}
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	// catch-all OPTIONS handler for CORS preflight
	r.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// Liveness
	r.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "abcbond-api",
		})
	})).Methods(http.MethodGet)

	// Public: root info and API documentation
	r.Handle("/", http.HandlerFunc(controllers.RootHandler)).Methods(http.MethodGet)
	r.Handle("/docs", http.HandlerFunc(controllers.DocsHandler)).Methods(http.MethodGet)
	r.Handle("/openapi.json", http.HandlerFunc(controllers.OpenAPIHandler)).Methods(http.MethodGet)

	UsersRoutes(r)
	InvestmentsRoutes(r)

	return r
}
