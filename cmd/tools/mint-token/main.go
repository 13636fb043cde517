package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/repline-dev/repline/internal/config"
	"github.com/repline-dev/repline/internal/domain"
	"github.com/repline-dev/repline/internal/jwt"
)

// Mints a development JWT compatible with the auth middleware, so the
// API can be exercised with curl without the external auth service.
func main() {
	var configFolder string
	var uid int64
	var email, name string
	var admin bool
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Int64Var(&uid, "uid", 1, "user id claim")
	flag.StringVar(&email, "email", "dev@example.com", "email claim")
	flag.StringVar(&name, "name", "Dev User", "display name claim")
	flag.BoolVar(&admin, "admin", false, "admin claim")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	token, err := jwtService.NewToken(domain.User{
		Id:          uid,
		Email:       email,
		DisplayName: name,
		Admin:       admin,
	})
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}

	fmt.Println(token)
	fmt.Println()
	fmt.Printf("curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/submissions\n", token)
}
