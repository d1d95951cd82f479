package topuprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/domain"
	"github.com/GlebRadaev/topups/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, topup *domain.Topup) error {
	query := `
		INSERT INTO topups (txid, username, amount, method, note, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, topup.TxID, topup.Username, topup.Amount, topup.Method, topup.Note, topup.Status, topup.RequestedAt)
	if err != nil {
		zap.L().Error("can't save topup", zap.String("txid", topup.TxID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByTxID(ctx context.Context, txid string) (*domain.Topup, error) {
	query := `
		SELECT txid, username, amount, method, note, status, requested_at, reviewed_at, provider, provider_txn_id, admin_note
		FROM topups
		WHERE UPPER(txid) = UPPER($1)
	`
	var topup domain.Topup
	err := r.db.QueryRow(ctx, query, txid).Scan(
		&topup.TxID, &topup.Username, &topup.Amount, &topup.Method, &topup.Note, &topup.Status,
		&topup.RequestedAt, &topup.ReviewedAt, &topup.Provider, &topup.ProviderTxnID, &topup.AdminNote,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find topup", zap.String("txid", txid), zap.Error(err))
		return nil, err
	}
	topup.AmountValid = true
	return &topup, nil
}

// Approve reports false when there is no topup with txid.
func (r *Repository) Approve(ctx context.Context, txid string, approval domain.Approval) (bool, error) {
	query := `
		UPDATE topups
		SET status = $1, reviewed_at = $2, provider = $3, provider_txn_id = $4, admin_note = $5
		WHERE UPPER(txid) = UPPER($6)
	`
	tag, err := r.db.Exec(ctx, query, domain.TopupStatusApproved, approval.ReviewedAt,
		approval.Provider, approval.ProviderTxnID, approval.AdminNote(), txid)
	if err != nil {
		zap.L().Error("can't approve topup", zap.String("txid", txid), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "SELECT 1 FROM topups LIMIT 1")
	return err
}
