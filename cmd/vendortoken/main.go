// Command vendortoken mints a bearer token for calling the write endpoints
// from scripts or a local dashboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/auth"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	vendor := flag.String("vendor", "", "vendor id (uuid); random when empty")
	role := flag.String("role", string(auth.RoleVendor), "viewer, vendor or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}

	r, err := auth.NewRole(*role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *role)
		os.Exit(1)
	}

	id := uuid.New()
	if *vendor != "" {
		if id, err = uuid.Parse(*vendor); err != nil {
			fmt.Fprintf(os.Stderr, "invalid vendor id: %v\n", err)
			os.Exit(1)
		}
	}

	token, err := jwt.NewService(secret, *ttl).GenerateToken(id, r.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
