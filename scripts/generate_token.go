package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Claims struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	CACode   string `json:"ca_code"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Dev helper: mints a token carrying the routing claims so endpoints can be
// exercised without going through the login flow.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	userID := flag.String("user", "", "User ID for the token")
	role := flag.String("role", "ca", "Role: ca or customer")
	caCode := flag.String("ca", "", "CA code for tenant routing")
	username := flag.String("username", "dev", "Username claim")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}
	if *caCode == "" {
		log.Fatal("CA code is required")
	}

	claims := &Claims{
		UserID:   *userID,
		Role:     *role,
		CACode:   *caCode,
		Username: *username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(signed)
}
