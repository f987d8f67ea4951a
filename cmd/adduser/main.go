// Command adduser creates an account directly against the user store. It is
// an operator tool for seeding and support work: the password is prompted
// for without echo and goes through the same validation and hashing path as
// the signup endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/streamify-app/auth-server/internal/common"
	"github.com/streamify-app/auth-server/internal/server/accounts"
	"github.com/streamify-app/auth-server/internal/server/config"
	"github.com/streamify-app/auth-server/internal/server/shared/db"
)

func main() {

	var cfg config.Config
	cfg.LoadDefaults()

	email := flag.String("email", "", "email for the new account")
	fullName := flag.String("name", "", "full name for the new account")
	dsn := flag.String("d", cfg.DatabaseDSN, "database DSN")
	flag.Parse()

	if *email == "" || *fullName == "" {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Print("Enter password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}
	defer common.WipeByteArray(password)

	cfg.DatabaseDSN = *dsn
	// The issued session token is discarded; this tool only creates the record.
	cfg.SecretKey = "unused"

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	service := accounts.NewService(m.Accounts(), &cfg)

	account, _, err := service.Register(context.Background(), *email, string(password), *fullName)
	if err != nil {
		log.Fatalf("creating account: %v", err)
	}

	fmt.Printf("created account %s (%s)\n", account.ID, account.Email)
}
