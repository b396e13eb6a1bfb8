package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/JosephChoi/abcbond-api/models"

	"github.com/golang-jwt/jwt/v5"
	redis "github.com/redis/go-redis/v9"
)

// TokenTTL is the fixed lifetime of an issued access token.
const TokenTTL = 24 * time.Hour

// RedisClient is an optional shared Redis client used by the login lockout
// tracker for cross-instance consistency. It is nil when REDIS_ADDR is not
// configured; callers must fall back to in-memory state.
var RedisClient *redis.Client

func init() {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return
	}
	opts := &redis.Options{Addr: addr}
	if p := os.Getenv("REDIS_PASS"); p != "" {
		opts.Password = p
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		var dbn int
		_, _ = fmt.Sscanf(dbStr, "%d", &dbn)
		opts.DB = dbn
	}
	rc := redis.NewClient(opts)
	if err := rc.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("warning: redis ping failed: %v\n", err)
		return
	}
	RedisClient = rc
}

// Identity is the decoded, verified content of an access token.
type Identity struct {
	ID       uint
	Username string
	Email    string
	Name     string
}

// GenerateToken issues a signed HS256 token for the authenticated user,
// valid for TokenTTL.
func GenerateToken(user *models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"name":     user.Name,
		"sub":      fmt.Sprintf("%d", user.ID),
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates signature and expiry and returns the embedded
// identity. Any failure (bad signature, expired, malformed claims) yields an
// error; callers map it to 401.
func VerifyToken(tokenString string) (*Identity, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	id := &Identity{}
	switch v := claims["userId"].(type) {
	case float64:
		id.ID = uint(v)
	case string:
		var n uint
		_, _ = fmt.Sscanf(v, "%d", &n)
		id.ID = n
	}
	if id.ID == 0 {
		return nil, errors.New("invalid token claims")
	}
	if s, ok := claims["username"].(string); ok {
		id.Username = s
	}
	if s, ok := claims["email"].(string); ok {
		id.Email = s
	}
	if s, ok := claims["name"].(string); ok {
		id.Name = s
	}
	return id, nil
}
