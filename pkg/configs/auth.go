// pkg/configs/auth.go
package configs

import (
	"log"
	"os"
)

// JWTSecret returns the token-signing secret. Refusing to start without one
// beats silently signing everything with a well-known default.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	return secret
}
