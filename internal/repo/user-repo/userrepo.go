package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/domain"
	"github.com/GlebRadaev/topups/internal/pg"
	"github.com/GlebRadaev/topups/internal/policy"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT username, role, site_quota, can_prebook, expiration_date
		FROM users
		WHERE username = $1
	`
	err := repo.db.QueryRow(ctx, query, username).
		Scan(&user.Username, &user.Role, &user.SiteQuota, &user.CanPrebook, &user.ExpirationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// UpdateSubscription reports false when the user is missing or is an admin.
func (repo *Repository) UpdateSubscription(ctx context.Context, sub domain.Subscription) (bool, error) {
	var updated bool
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		var role string
		err := repo.db.QueryRow(ctx, "SELECT role FROM users WHERE username = $1 FOR UPDATE", sub.Username).Scan(&role)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		if policy.IsAdmin(role) {
			return nil
		}

		if sub.HasEntitlement {
			query := `
				UPDATE users
				SET role = $1, site_quota = $2, can_prebook = $3, expiration_date = $4
				WHERE username = $5
			`
			_, err = repo.db.Exec(ctx, query, sub.Role, sub.SiteQuota, sub.CanPrebook, sub.ExpirationDate, sub.Username)
		} else {
			query := `
				UPDATE users
				SET role = $1, expiration_date = $2
				WHERE username = $3
			`
			_, err = repo.db.Exec(ctx, query, sub.Role, sub.ExpirationDate, sub.Username)
		}
		if err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		zap.L().Error("can't update subscription", zap.String("username", sub.Username), zap.Error(err))
		return false, err
	}
	return updated, nil
}

func (repo *Repository) Ping(ctx context.Context) error {
	_, err := repo.db.Exec(ctx, "SELECT 1 FROM users LIMIT 1")
	return err
}
