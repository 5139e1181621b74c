// Command issue-token mints an access token for local development and smoke
// tests. Production tokens come from the identity provider.
//
// Usage:
//
//	issue-token --user=<uuid> [--role=learner|mentor|admin] [--ttl=1h]
//
// Reads AUTH_JWT_SECRET and AUTH_JWT_ISSUER like the server does.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursetrack-backend/internal/auth"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "subject user id (uuid); a random id is used when empty")
	role := flag.String("role", string(domain.UserRoleLearner), "role claim: learner, mentor or admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if len(secret) < 32 {
		log.Fatal("AUTH_JWT_SECRET must be set to at least 32 characters")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "coursetrack"
	}

	userID := uuid.New()
	if *user != "" {
		parsed, err := uuid.Parse(*user)
		if err != nil {
			log.Fatalf("invalid --user: %v", err)
		}
		userID = parsed
	}

	token, err := auth.NewJWTManager(secret, issuer, *ttl).GenerateAccessToken(userID, domain.UserRole(*role))
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user=%s role=%s expires_in=%s\n", userID, *role, *ttl)
	fmt.Println(token)
}
