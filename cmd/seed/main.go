// Command seed creates an admin user interactively. Intended as the
// out-of-band bootstrap for a fresh deployment, before any admin exists
// to use the registration route.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/certitrack/backend/auth"
	"github.com/certitrack/backend/config"
	"github.com/certitrack/backend/database"
	"github.com/certitrack/backend/models"
	"github.com/certitrack/backend/store"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	fmt.Println("\n--- Create Admin User ---")

	reader := bufio.NewReader(os.Stdin)

	name, err := prompt(reader, "Enter Admin Name: ")
	if err != nil {
		log.Fatalf("❌ Failed to read name: %v", err)
	}
	email, err := prompt(reader, "Enter Admin Email: ")
	if err != nil {
		log.Fatalf("❌ Failed to read email: %v", err)
	}
	password, err := promptPassword("Enter Admin Password: ")
	if err != nil {
		log.Fatalf("❌ Failed to read password: %v", err)
	}

	if name == "" || email == "" || password == "" {
		log.Fatal("❌ All fields are required")
	}
	if len(password) < 6 {
		log.Fatal("❌ Password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	users := store.NewUsers(db)
	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	if err := users.Create(&admin); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			log.Fatalf("❌ A user with email %s already exists", email)
		}
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}

	fmt.Println("\n---------------------------")
	fmt.Println("✅ Admin successfully created!")
	fmt.Printf("Email: %s\n", email)
	fmt.Println("---------------------------")
}
