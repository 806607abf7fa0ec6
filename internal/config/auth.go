package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the settings for the server's token-based authentication.
// The server runs with a single operator account whose credentials come from
// the environment; the bcrypt hash is produced once with `cv2web hash-password`
// and stored, never the plaintext.
type AuthConfig struct {
	JWTSecret       string
	ExpirationHours int
	AdminUser       string
	AdminHash       string // bcrypt hash of the operator password
	BcryptCost      int
}

// NewAuthConfig creates the authentication configuration from environment
// variables. It reads CV2WEB_JWT_SECRET and CV2WEB_ADMIN_HASH (both
// required), CV2WEB_ADMIN_USER (default: "admin"),
// CV2WEB_JWT_EXPIRATION_HOURS (default: 24) and CV2WEB_BCRYPT_COST
// (default: 12).
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("CV2WEB_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("CV2WEB_JWT_SECRET is required but not set")
	}

	hash := os.Getenv("CV2WEB_ADMIN_HASH")
	if hash == "" {
		return nil, fmt.Errorf("CV2WEB_ADMIN_HASH is required but not set")
	}

	user := os.Getenv("CV2WEB_ADMIN_USER")
	if user == "" {
		user = "admin"
	}

	expiration, err := intFromEnv("CV2WEB_JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}

	cost, err := intFromEnv("CV2WEB_BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}

	cfg := &AuthConfig{
		JWTSecret:       secret,
		ExpirationHours: expiration,
		AdminUser:       user,
		AdminHash:       hash,
		BcryptCost:      cost,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *AuthConfig) normalize() error {
	if c.ExpirationHours < 1 {
		return fmt.Errorf("CV2WEB_JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword hashes a password using bcrypt at the configured cost.
func (c *AuthConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyCredentials checks a username/password pair against the operator
// account. The bcrypt comparison runs even for an unknown username so the
// two failure modes take the same time.
func (c *AuthConfig) VerifyCredentials(user, pw string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.AdminHash), []byte(pw))
	return err == nil && user == c.AdminUser
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}
