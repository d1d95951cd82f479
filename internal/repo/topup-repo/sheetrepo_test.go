package topuprepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/topups/internal/domain"
	"github.com/GlebRadaev/topups/internal/store"
)

func newSheetMock(t *testing.T) (*SheetRepository, *store.MockRecordStore) {
	ctrl := gomock.NewController(t)
	s := store.NewMockRecordStore(ctrl)
	return NewSheet(s, "Topups"), s
}

func pendingRecord() *store.Record {
	return &store.Record{
		Row: 7,
		Fields: map[string]string{
			"TxID": "TU1", "RequestedAt": "2026-01-02 03:04:05", "Username": "alice", "Amount": "1500",
			"Method": "Stripe/Checkout", "Note": "Top-up", "Status": "Pending",
			"ReviewedAt": "", "Provider": "", "ProviderTxnID": "", "AdminNote": "",
		},
	}
}

func TestSheetRepository_Create(t *testing.T) {
	topup := &domain.Topup{
		TxID:        "TU1",
		Username:    "alice",
		Amount:      decimal.RequireFromString("1500.50"),
		Method:      "Stripe/Checkout",
		Note:        "Top-up",
		Status:      domain.TopupStatusPending,
		RequestedAt: time.Date(2026, 1, 2, 10, 4, 5, 0, time.FixedZone("ICT", 7*3600)),
	}
	expectedRow := []any{"TU1", "2026-01-02 03:04:05", "alice", 1500.5, "Stripe/Checkout", "Top-up", "Pending", "", "", "", ""}

	tests := []struct {
		name        string
		prepareMock func(s *store.MockRecordStore)
		wantErr     bool
	}{
		{
			name: "Row appended",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().AppendRow(gomock.Any(), "Topups", expectedRow).Return(nil)
			},
		},
		{
			name: "Store error",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().AppendRow(gomock.Any(), "Topups", expectedRow).Return(errors.New("quota exceeded"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s := newSheetMock(t)
			tt.prepareMock(s)

			err := repo.Create(context.Background(), topup)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSheetRepository_FindByTxID(t *testing.T) {
	reviewedAt := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		prepareMock func(s *store.MockRecordStore)
		expected    *domain.Topup
		wantErr     bool
	}{
		{
			name: "Pending row",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "tu1", store.MatchFold).Return(pendingRecord(), nil)
			},
			expected: &domain.Topup{
				TxID: "TU1", Username: "alice", Amount: decimal.RequireFromString("1500"), Method: "Stripe/Checkout",
				Note: "Top-up", Status: "Pending", RequestedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), AmountValid: true,
			},
		},
		{
			name: "Approved row with unparsable amount",
			prepareMock: func(s *store.MockRecordStore) {
				rec := pendingRecord()
				rec.Fields["Amount"] = "n/a"
				rec.Fields["Status"] = "Approved"
				rec.Fields["ReviewedAt"] = "2026-01-03 00:00:00"
				s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "tu1", store.MatchFold).Return(rec, nil)
			},
			expected: &domain.Topup{
				TxID: "TU1", Username: "alice", Method: "Stripe/Checkout", Note: "Top-up", Status: "Approved",
				RequestedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ReviewedAt: &reviewedAt,
			},
		},
		{
			name: "Not found",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "tu1", store.MatchFold).Return(nil, nil)
			},
		},
		{
			name: "Store error",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "tu1", store.MatchFold).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s := newSheetMock(t)
			tt.prepareMock(s)

			topup, err := repo.FindByTxID(context.Background(), "tu1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, topup)
				return
			}
			assert.True(t, tt.expected.Amount.Equal(topup.Amount))
			tt.expected.Amount = topup.Amount
			assert.Equal(t, tt.expected, topup)
		})
	}
}

func TestSheetRepository_Approve(t *testing.T) {
	approval := domain.Approval{
		Provider:      "Stripe",
		ProviderTxnID: "pi_1",
		ReviewedAt:    time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
	}
	expectedValues := []any{"Approved", "2026-01-05 10:00:00", "Stripe", "pi_1", "paid via Stripe pi_1"}

	tests := []struct {
		name        string
		prepareMock func(s *store.MockRecordStore)
		updated     bool
		wantErr     bool
	}{
		{
			name: "Status range written on the found row",
			prepareMock: func(s *store.MockRecordStore) {
				gomock.InOrder(
					s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "TU1", store.MatchFold).Return(pendingRecord(), nil),
					s.EXPECT().UpdateRange(gomock.Any(), "Topups", 7, "G", expectedValues).Return(nil),
				)
			},
			updated: true,
		},
		{
			name: "Row missing",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "TU1", store.MatchFold).Return(nil, nil)
			},
		},
		{
			name: "Lookup error",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "TU1", store.MatchFold).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name: "Write error",
			prepareMock: func(s *store.MockRecordStore) {
				s.EXPECT().FindByKey(gomock.Any(), "Topups", "TxID", "TU1", store.MatchFold).Return(pendingRecord(), nil)
				s.EXPECT().UpdateRange(gomock.Any(), "Topups", 7, "G", expectedValues).Return(errors.New("quota exceeded"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s := newSheetMock(t)
			tt.prepareMock(s)

			updated, err := repo.Approve(context.Background(), "TU1", approval)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestSheetRepository_Ping(t *testing.T) {
	repo, s := newSheetMock(t)
	s.EXPECT().Ping(gomock.Any(), "Topups").Return(nil)
	assert.NoError(t, repo.Ping(context.Background()))
}
