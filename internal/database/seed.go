package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	name     string
	email    string
	password string
	isAdmin  bool
}

type seedService struct {
	name        string
	description string
	price       float64
	status      string
}

var demoUsers = []seedUser{
	{name: "Admin User", email: "admin@example.com", password: "admin@123", isAdmin: true},
	{name: "Test User", email: "test@example.com", password: "regular@123", isAdmin: false},
}

var demoServices = []seedService{
	{name: "Deep House Cleaning", description: "Full top-to-bottom cleaning of your home.", price: 120.00, status: "active"},
	{name: "Plumbing Inspection", description: "Whole-house plumbing check with written report.", price: 80.00, status: "active"},
	{name: "Garden Maintenance", description: "Lawn mowing, hedge trimming and weeding.", price: 65.50, status: "active"},
	{name: "Electrical Safety Audit", description: "Certified inspection of wiring and panels.", price: 150.00, status: "active"},
	{name: "Chimney Sweep", description: "Seasonal chimney cleaning.", price: 95.00, status: "inactive"},
}

// SeedDemoData populates an empty database with a known admin, a regular user
// and a handful of services. It does nothing if any user already exists.
func SeedDemoData(db *sql.DB, logger *zerolog.Logger) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		logger.Debug().Msg("database not empty, skipping demo seed")
		return nil
	}

	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		_, err = db.Exec(`
			INSERT INTO users (name, email, password_hash, is_admin)
			VALUES ($1, $2, $3, $4)
		`, u.name, u.email, string(hash), u.isAdmin)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}

	for _, s := range demoServices {
		_, err := db.Exec(`
			INSERT INTO services (name, description, price, status)
			VALUES ($1, $2, $3, $4)
		`, s.name, s.description, s.price, s.status)
		if err != nil {
			return fmt.Errorf("failed to seed service %s: %w", s.name, err)
		}
	}

	logger.Info().
		Int("users", len(demoUsers)).
		Int("services", len(demoServices)).
		Msg("seeded demo data")
	return nil
}
