// Command tokengen mints a bearer token for GET /api/v1/generations,
// signed with the server's JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
)

func main() {
	subject := flag.String("subject", "", "Operator name recorded in the token")
	expiry := flag.Duration("expiry", 0, "Token lifetime (defaults to JWT_EXPIRY)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ttl := cfg.JWTExpiry
	if *expiry > 0 {
		ttl = *expiry
	}

	token, err := crypto.GenerateToken(*subject, cfg.JWTSecret, ttl)
	if err != nil {
		slog.Error("minting token failed", "error", err)
		os.Exit(1)
	}

	slog.Info("token minted", "subject", *subject, "expires_at", time.Now().Add(ttl).Format(time.RFC3339))
	fmt.Println(token)
}
