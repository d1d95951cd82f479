package userrepo

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/domain"
	"github.com/GlebRadaev/topups/internal/policy"
	"github.com/GlebRadaev/topups/internal/store"
)

// Users tab header names.
const (
	colUsername   = "Username"
	colRole       = "Role"
	colSites      = "Sites"
	colCanPrebook = "CanPrebook"
	colExpiration = "Expiration"
)

// Users tab columns written on promotion.
const (
	roleColumn       = "C"
	expirationColumn = "F"
)

type SheetRepository struct {
	store store.RecordStore
	table string
}

func NewSheet(s store.RecordStore, table string) *SheetRepository {
	return &SheetRepository{
		store: s,
		table: table,
	}
}

func (repo *SheetRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	rec, err := repo.store.FindByKey(ctx, repo.table, colUsername, username, store.MatchExact)
	if err != nil {
		zap.L().Error("can't find user", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return userFromRecord(rec), nil
}

// UpdateSubscription reports false when the user is missing or is an admin.
func (repo *SheetRepository) UpdateSubscription(ctx context.Context, sub domain.Subscription) (bool, error) {
	rec, err := repo.store.FindByKey(ctx, repo.table, colUsername, sub.Username, store.MatchExact)
	if err != nil {
		zap.L().Error("can't find user", zap.String("username", sub.Username), zap.Error(err))
		return false, err
	}
	if rec == nil || policy.IsAdmin(rec.Get(colRole)) {
		return false, nil
	}

	expiration := sub.ExpirationDate.UTC().Format(store.DateLayout)
	if sub.HasEntitlement {
		err = repo.store.UpdateRange(ctx, repo.table, rec.Row, roleColumn,
			[]any{sub.Role, sub.SiteQuota, sheetBool(sub.CanPrebook), expiration})
	} else {
		err = repo.store.UpdateRange(ctx, repo.table, rec.Row, roleColumn, []any{sub.Role})
		if err == nil {
			err = repo.store.UpdateRange(ctx, repo.table, rec.Row, expirationColumn, []any{expiration})
		}
	}
	if err != nil {
		zap.L().Error("can't update subscription", zap.String("username", sub.Username), zap.Int("row", rec.Row), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (repo *SheetRepository) Ping(ctx context.Context) error {
	return repo.store.Ping(ctx, repo.table)
}

func userFromRecord(rec *store.Record) *domain.User {
	user := &domain.User{
		Username:   rec.Get(colUsername),
		Role:       strings.ToLower(rec.Get(colRole)),
		CanPrebook: strings.EqualFold(rec.Get(colCanPrebook), "TRUE"),
	}
	if sites, err := strconv.Atoi(rec.Get(colSites)); err == nil {
		user.SiteQuota = sites
	}
	if exp, err := time.Parse(store.DateLayout, rec.Get(colExpiration)); err == nil {
		user.ExpirationDate = &exp
	}
	return user
}

func sheetBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}
