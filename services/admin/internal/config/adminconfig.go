package config

import (
	"errors"
	"os"
	"strings"
)

type AdminConfig struct {
	JWTSecret []byte
}

func LoadAdmin() (AdminConfig, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return AdminConfig{}, errors.New("JWT_SECRET is required")
	}
	return AdminConfig{JWTSecret: []byte(secret)}, nil
}
