package directory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type seedAccount struct {
	id       string
	email    string
	name     string
	role     Role
	password string
}

// demoRoster is the built-in demo community installed on first run.
var demoRoster = []seedAccount{
	{id: "admin", email: "admin@janovian.com", name: "Admin User", role: RoleAdmin, password: "admin123!@#"},
	{id: "nastya", email: "nastya@janovian.com", name: "Nastya", role: RoleUser, password: "Nastya123!"},
	{id: "gleb", email: "gleb@janovian.com", name: "Gleb", role: RoleUser, password: "Gleb123!"},
	{id: "slava", email: "slava@janovian.com", name: "Slava", role: RoleUser, password: "Slava123!"},
	{id: "ariadna", email: "ariadna@janovian.com", name: "Ariadna", role: RoleUser, password: "Ariadna123!"},
	{id: "david", email: "david@janovian.com", name: "David", role: RoleUser, password: "David123!"},
	{id: "simon", email: "simon@janovian.com", name: "Simon", role: RoleUser, password: "Simon123!"},
	{id: "vladimir", email: "vladimir@janovian.com", name: "Vladimir", role: RoleUser, password: "Vladimir123!"},
}

// Seed installs the demo roster, skipping accounts that already exist, so it
// is safe to run on every startup. Seeded accounts are pre-verified.
func (d *SQLiteDirectory) Seed(ctx context.Context) error {
	for _, s := range demoRoster {
		var exists int
		err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE email = ?`, s.email).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check seed account %s: %w", s.email, err)
		}
		if exists > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		_, err = d.db.ExecContext(ctx, `
			INSERT INTO accounts (id, email, name, role, password_hash, verified, created_at)
			VALUES (?, ?, ?, ?, ?, 1, ?)
		`, s.id, s.email, s.name, string(s.role), hash, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to insert seed account %s: %w", s.email, err)
		}
	}
	return nil
}
