package directory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/janovian/stillpoint/internal/common"
	"github.com/janovian/stillpoint/internal/dbx"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when no account matches, so a missing email
// costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("stillpoint-dummy"), bcrypt.MinCost)

// SQLiteDirectory implements Directory on the accounts table, with an
// artificial latency applied to every call.
type SQLiteDirectory struct {
	db      *sql.DB
	latency time.Duration
}

// NewSQLiteDirectory returns a directory over db. latency simulates a
// backend round-trip; zero disables it.
func NewSQLiteDirectory(db *sql.DB, latency time.Duration) *SQLiteDirectory {
	return &SQLiteDirectory{db: db, latency: latency}
}

// delay waits out the simulated latency, honoring cancellation.
func (d *SQLiteDirectory) delay(ctx context.Context) error {
	if d.latency <= 0 {
		return nil
	}
	t := time.NewTimer(d.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func getByEmail(ctx context.Context, db dbx.DBTX, email string) (*Account, []byte, error) {
	var a Account
	var hash []byte
	var verified int
	err := db.QueryRowContext(ctx, `
		SELECT id, email, name, role, password_hash, verified, created_at
		FROM accounts WHERE email = ?
	`, email).Scan(&a.ID, &a.Email, &a.Name, (*string)(&a.Role), &hash, &verified, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query account: %w", err)
	}
	a.Verified = verified != 0
	return &a, hash, nil
}

func (d *SQLiteDirectory) Authenticate(ctx context.Context, email string, password []byte) (*Account, error) {
	if err := d.delay(ctx); err != nil {
		return nil, err
	}

	account, hash, err := getByEmail(ctx, d.db, email)
	if err != nil {
		if err == common.ErrorNotFound {
			_ = bcrypt.CompareHashAndPassword(dummyHash, password)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(hash, password) != nil {
		return nil, common.ErrorInvalidCredentials
	}
	if !account.Verified {
		return nil, common.ErrorEmailNotVerified
	}
	return account, nil
}

func (d *SQLiteDirectory) Register(ctx context.Context, email string, password []byte, name string) (*Account, error) {
	if err := d.delay(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      RoleUser,
		Verified:  false,
		CreatedAt: time.Now().UTC(),
	}

	// Existence check and insert run in one transaction so two concurrent
	// signups for the same email cannot both succeed.
	err = dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, _, err := getByEmail(ctx, tx, email); err == nil {
			return common.ErrorEmailTaken
		} else if err != common.ErrorNotFound {
			return common.ErrorInternal
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO accounts (id, email, name, role, password_hash, verified, created_at)
			VALUES (?, ?, ?, ?, ?, 0, ?)
		`, account.ID, account.Email, account.Name, string(account.Role), hash, account.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (d *SQLiteDirectory) MarkVerified(ctx context.Context, email string) error {
	if err := d.delay(ctx); err != nil {
		return err
	}

	res, err := d.db.ExecContext(ctx, `UPDATE accounts SET verified = 1 WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("failed to mark account verified: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
