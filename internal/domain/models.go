package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AnonymousUser stands for a topup requested without a username.
const AnonymousUser = "-"

const (
	TopupStatusPending  = "Pending"
	TopupStatusApproved = "Approved"
	// topupStatusPaid is written by older ledger tooling and means the same as Approved.
	topupStatusPaid = "Paid"
)

type Topup struct {
	TxID          string          `db:"txid"`
	Username      string          `db:"username"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	Note          string          `db:"note"`
	Status        string          `db:"status"`
	RequestedAt   time.Time       `db:"requested_at"`
	ReviewedAt    *time.Time      `db:"reviewed_at"`
	Provider      string          `db:"provider"`
	ProviderTxnID string          `db:"provider_txn_id"`
	AdminNote     string          `db:"admin_note"`

	// AmountValid is false when the stored amount could not be parsed.
	AmountValid bool `db:"-"`
}

func (t *Topup) IsApproved() bool {
	status := strings.TrimSpace(t.Status)
	return strings.EqualFold(status, TopupStatusApproved) || strings.EqualFold(status, topupStatusPaid)
}

// Approval is the provider metadata recorded when a topup is marked paid.
type Approval struct {
	Provider      string
	ProviderTxnID string
	ReviewedAt    time.Time
}

func (a Approval) AdminNote() string {
	return strings.TrimSpace("paid via " + a.Provider + " " + a.ProviderTxnID)
}

type User struct {
	Username       string     `db:"username"`
	Role           string     `db:"role"`
	SiteQuota      int        `db:"site_quota"`
	CanPrebook     bool       `db:"can_prebook"`
	ExpirationDate *time.Time `db:"expiration_date"`
}

// Subscription is the promotion written to a user row. SiteQuota and CanPrebook are
// written only when HasEntitlement is set.
type Subscription struct {
	Username       string
	Role           string
	ExpirationDate time.Time
	SiteQuota      int
	CanPrebook     bool
	HasEntitlement bool
}
