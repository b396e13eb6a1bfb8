package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/JosephChoi/abcbond-api/utils"
)

// GET /
func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "ABC Bond API - real estate investment platform",
		"version":     "1.0.0",
		"environment": getenvDefault("ENV", "development"),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"endpoints": map[string]string{
			"docs":            "/docs",
			"health":          "/health",
			"auth":            "/auth",
			"users":           "/users",
			"investments":     "/investments",
			"userInvestments": "/user-investments",
		},
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GET /docs — Swagger UI loading the served OpenAPI document.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsPage))
}

// GET /openapi.json
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(openAPISpec))
}

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>ABC Bond API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({ url: '/openapi.json', dom_id: '#swagger-ui' });
    };
  </script>
</body>
</html>`

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "ABC Bond API",
    "description": "REST API for a real estate investment platform: accounts, investment listings and per-user positions.",
    "version": "1.0.0"
  },
  "components": {
    "securitySchemes": {
      "bearerAuth": {"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}
    },
    "schemas": {
      "Error": {
        "type": "object",
        "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
      },
      "Investment": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"},
          "location": {"type": "string"},
          "address": {"type": "string"},
          "total_amount": {"type": "number"},
          "expected_return": {"type": "number"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "status": {"type": "string", "enum": ["active", "completed", "cancelled"]},
          "type": {"type": "string", "enum": ["apartment", "commercial", "office"]}
        }
      },
      "UserInvestment": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "user_id": {"type": "integer"},
          "investment_id": {"type": "integer"},
          "invested_amount": {"type": "number"},
          "status": {"type": "string", "enum": ["active", "cancelled"]}
        }
      }
    }
  },
  "paths": {
    "/auth/login": {
      "post": {
        "summary": "Login with username and password",
        "requestBody": {"content": {"application/json": {"schema": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}}}},
        "responses": {"200": {"description": "Token issued"}, "400": {"description": "Missing fields"}, "401": {"description": "Invalid credentials"}}
      }
    },
    "/auth/register": {
      "post": {"summary": "Create an account", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}}}
    },
    "/users": {
      "get": {"summary": "List users", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}}}
    },
    "/users/profile": {
      "get": {"summary": "Caller profile", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}}},
      "put": {"summary": "Update caller profile", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "No fields to update"}}}
    },
    "/users/profile/avatar": {
      "post": {"summary": "Upload avatar image", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid image"}}}
    },
    "/users/{id}": {
      "get": {"summary": "User by id", "security": [{"bearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/investments": {
      "get": {"summary": "List investments", "parameters": [{"name": "status", "in": "query", "schema": {"type": "string"}}, {"name": "type", "in": "query", "schema": {"type": "string"}}], "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Create investment", "security": [{"bearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}}}
    },
    "/investments/{id}": {
      "get": {"summary": "Investment detail with monthly interest history", "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"summary": "Update investment", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}}},
      "delete": {"summary": "Delete investment", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Referenced by positions"}, "404": {"description": "Not found"}}}
    },
    "/investments/{id}/monthly-interests": {
      "post": {"summary": "Append a monthly interest entry", "security": [{"bearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad month or duplicate"}}}
    },
    "/user-investments/my": {
      "get": {"summary": "Caller positions", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}}}
    },
    "/user-investments/my/stats": {
      "get": {"summary": "Caller aggregate stats", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}}}
    },
    "/user-investments/{id}/investors": {
      "get": {"summary": "Investors in an investment", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}}}
    },
    "/user-investments": {
      "post": {"summary": "Open a position", "security": [{"bearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "404": {"description": "Investment not found"}}}
    },
    "/user-investments/{id}": {
      "put": {"summary": "Change position amount", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Remove position", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/user-investments/{id}/cancel": {
      "post": {"summary": "Cancel a position", "security": [{"bearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Already cancelled"}, "404": {"description": "Not found"}}}
    },
    "/health": {"get": {"summary": "Liveness", "responses": {"200": {"description": "Healthy"}}}}
  }
}`
