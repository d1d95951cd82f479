package topuprepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/domain"
	"github.com/GlebRadaev/topups/internal/store"
)

// Topups tab header names, in column order A..K.
const (
	colTxID          = "TxID"
	colRequestedAt   = "RequestedAt"
	colUsername      = "Username"
	colAmount        = "Amount"
	colMethod        = "Method"
	colNote          = "Note"
	colStatus        = "Status"
	colReviewedAt    = "ReviewedAt"
	colProvider      = "Provider"
	colProviderTxnID = "ProviderTxnID"
	colAdminNote     = "AdminNote"
)

// approvalColumn is where Status starts; approval writes Status..AdminNote.
const approvalColumn = "G"

// SheetRepository keeps the ledger in a spreadsheet tab.
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

func (r *SheetRepository) Create(ctx context.Context, topup *domain.Topup) error {
	row := []any{
		topup.TxID,
		topup.RequestedAt.UTC().Format(store.TimeLayout),
		topup.Username,
		topup.Amount.InexactFloat64(),
		topup.Method,
		topup.Note,
		topup.Status,
		"", "", "", "",
	}
	if err := r.store.AppendRow(ctx, r.table, row); err != nil {
		zap.L().Error("can't append topup", zap.String("txid", topup.TxID), zap.Error(err))
		return err
	}
	return nil
}

func (r *SheetRepository) FindByTxID(ctx context.Context, txid string) (*domain.Topup, error) {
	rec, err := r.store.FindByKey(ctx, r.table, colTxID, txid, store.MatchFold)
	if err != nil {
		zap.L().Error("can't find topup", zap.String("txid", txid), zap.Error(err))
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return topupFromRecord(rec), nil
}

// Approve reports false when there is no topup with txid.
func (r *SheetRepository) Approve(ctx context.Context, txid string, approval domain.Approval) (bool, error) {
	rec, err := r.store.FindByKey(ctx, r.table, colTxID, txid, store.MatchFold)
	if err != nil {
		zap.L().Error("can't find topup", zap.String("txid", txid), zap.Error(err))
		return false, err
	}
	if rec == nil {
		return false, nil
	}

	values := []any{
		domain.TopupStatusApproved,
		approval.ReviewedAt.UTC().Format(store.TimeLayout),
		approval.Provider,
		approval.ProviderTxnID,
		approval.AdminNote(),
	}
	if err := r.store.UpdateRange(ctx, r.table, rec.Row, approvalColumn, values); err != nil {
		zap.L().Error("can't approve topup", zap.String("txid", txid), zap.Int("row", rec.Row), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *SheetRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx, r.table)
}

func topupFromRecord(rec *store.Record) *domain.Topup {
	topup := &domain.Topup{
		TxID:          rec.Get(colTxID),
		Username:      rec.Get(colUsername),
		Method:        rec.Get(colMethod),
		Note:          rec.Get(colNote),
		Status:        rec.Get(colStatus),
		Provider:      rec.Get(colProvider),
		ProviderTxnID: rec.Get(colProviderTxnID),
		AdminNote:     rec.Get(colAdminNote),
	}
	if amount, err := decimal.NewFromString(rec.Get(colAmount)); err == nil {
		topup.Amount = amount
		topup.AmountValid = true
	}
	if at, err := time.Parse(store.TimeLayout, rec.Get(colRequestedAt)); err == nil {
		topup.RequestedAt = at
	}
	if at, err := time.Parse(store.TimeLayout, rec.Get(colReviewedAt)); err == nil {
		topup.ReviewedAt = &at
	}
	return topup
}
