package topupservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/domain"
	"github.com/GlebRadaev/topups/internal/metrics"
	"github.com/GlebRadaev/topups/internal/policy"
	"github.com/GlebRadaev/topups/pkg/txid"
)

//go:generate mockgen -source=topupservice.go -destination=mock_topupservice.go -package=topupservice
type TopupRepo interface {
	Create(ctx context.Context, topup *domain.Topup) error
	FindByTxID(ctx context.Context, txid string) (*domain.Topup, error)
	Approve(ctx context.Context, txid string, approval domain.Approval) (bool, error)
}

type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateSubscription(ctx context.Context, sub domain.Subscription) (bool, error)
}

var (
	ErrAmountNotAllowed = errors.New("amount not allowed")
	ErrRecordFailed     = errors.New("record topup request failed")
	ErrTopupNotFound    = errors.New("topup not found")
	ErrAmountMismatch   = errors.New("amount mismatch")
)

// amountTolerance is the largest difference between a paid and a requested amount
// that still counts as equal.
var amountTolerance = decimal.RequireFromString("0.005")

// AmountNotAllowedError lists the amounts a non-admin user may request.
type AmountNotAllowedError struct {
	Allowed string
}

func (e *AmountNotAllowedError) Error() string {
	return fmt.Sprintf("amount must be one of {%s}", e.Allowed)
}

func (e *AmountNotAllowedError) Is(target error) bool {
	return target == ErrAmountNotAllowed
}

type Service struct {
	topups TopupRepo
	users  UserRepo
	policy *policy.Policy

	now     func() time.Time
	newTxID func() string
}

func New(topups TopupRepo, users UserRepo, p *policy.Policy) *Service {
	return &Service{
		topups:  topups,
		users:   users,
		policy:  p,
		now:     time.Now,
		newTxID: txid.New,
	}
}

// Request records a pending topup and returns its TxID.
func (s *Service) Request(ctx context.Context, username string, amount decimal.Decimal, method, note string) (string, error) {
	if !s.isAdmin(ctx, username) && !s.policy.Allows(amount) {
		metrics.TopupRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		zap.L().Info("topup amount not allowed", zap.String("username", username), zap.String("amount", amount.String()))
		return "", &AmountNotAllowedError{Allowed: s.policy.FormatAllowed()}
	}

	topup := &domain.Topup{
		TxID:        s.newTxID(),
		Username:    username,
		Amount:      amount,
		Method:      method,
		Note:        note,
		Status:      domain.TopupStatusPending,
		RequestedAt: s.now().UTC(),
		AmountValid: true,
	}
	if err := s.topups.Create(ctx, topup); err != nil {
		metrics.TopupRequestsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return "", fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}

	metrics.TopupRequestsTotal.WithLabelValues(metrics.OutcomeRecorded).Inc()
	zap.L().Info("topup requested",
		zap.String("txid", topup.TxID),
		zap.String("username", username),
		zap.String("amount", amount.StringFixed(2)))
	return topup.TxID, nil
}

// MarkPaid approves the topup and promotes its user. An already approved topup is left as is.
// amount is nil when the caller did not report one.
func (s *Service) MarkPaid(ctx context.Context, id string, amount *decimal.Decimal, provider, providerTxnID string) error {
	if !txid.IsGenerated(id) {
		zap.L().Warn("txid was not issued by this service", zap.String("txid", id))
	}

	// the row may change between this read and the writes below; concurrent calls can both promote
	topup, err := s.topups.FindByTxID(ctx, id)
	if err != nil {
		metrics.MarkPaidTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return fmt.Errorf("find topup: %w", err)
	}
	if topup != nil && topup.IsApproved() {
		metrics.MarkPaidTotal.WithLabelValues(metrics.OutcomeAlreadyApproved).Inc()
		zap.L().Info("topup already approved", zap.String("txid", topup.TxID))
		return nil
	}

	approval := domain.Approval{
		Provider:      provider,
		ProviderTxnID: providerTxnID,
		ReviewedAt:    s.now().UTC(),
	}
	err = s.approve(ctx, id, amount, approval)
	if err != nil && amount == nil {
		zap.L().Warn("approve failed, retrying", zap.String("txid", id), zap.Error(err))
		err = s.approve(ctx, id, nil, approval)
	}
	if err != nil {
		metrics.MarkPaidTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return fmt.Errorf("approve topup: %w", err)
	}

	if topup != nil {
		if err := s.promote(ctx, topup, amount); err != nil {
			metrics.MarkPaidTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
			return fmt.Errorf("promote user: %w", err)
		}
	}

	metrics.MarkPaidTotal.WithLabelValues(metrics.OutcomeApproved).Inc()
	zap.L().Info("topup approved", zap.String("txid", id), zap.String("provider", provider))
	return nil
}

func (s *Service) approve(ctx context.Context, id string, amount *decimal.Decimal, approval domain.Approval) error {
	topup, err := s.topups.FindByTxID(ctx, id)
	if err != nil {
		return err
	}
	if topup == nil {
		return ErrTopupNotFound
	}
	// an unreadable stored amount cannot be compared, promotion falls back to the paid one
	if amount != nil && topup.AmountValid && topup.Amount.Sub(*amount).Abs().GreaterThan(amountTolerance) {
		return fmt.Errorf("%w: paid %s, requested %s", ErrAmountMismatch, amount.StringFixed(2), topup.Amount.StringFixed(2))
	}

	updated, err := s.topups.Approve(ctx, topup.TxID, approval)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTopupNotFound
	}
	return nil
}

func (s *Service) promote(ctx context.Context, topup *domain.Topup, supplied *decimal.Decimal) error {
	username := strings.TrimSpace(topup.Username)
	if username == "" || username == domain.AnonymousUser {
		return nil
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user != nil && policy.IsAdmin(user.Role) {
		zap.L().Info("admin keeps its role", zap.String("username", username))
		return nil
	}

	amount := topup.Amount
	if !topup.AmountValid {
		if supplied == nil {
			return nil
		}
		amount = *supplied
	}
	role, ok := s.policy.RoleFor(amount)
	if !ok {
		zap.L().Info("no role for amount", zap.String("txid", topup.TxID), zap.String("amount", amount.String()))
		return nil
	}
	if user == nil {
		zap.L().Warn("user not found, role not granted", zap.String("username", username), zap.String("role", role))
		return nil
	}

	sub := domain.Subscription{
		Username:       username,
		Role:           role,
		ExpirationDate: s.policy.Expiration(s.now().UTC()),
	}
	if e, ok := s.policy.Entitlement(role); ok {
		sub.SiteQuota = e.Sites
		sub.CanPrebook = e.CanPrebook
		sub.HasEntitlement = true
	}

	updated, err := s.users.UpdateSubscription(ctx, sub)
	if err != nil {
		return err
	}
	if updated {
		metrics.PromotionsTotal.WithLabelValues(role).Inc()
		zap.L().Info("user promoted",
			zap.String("username", username),
			zap.String("role", role),
			zap.Time("expires", sub.ExpirationDate))
	}
	return nil
}

// isAdmin never fails: an unknown user or a lookup error means not an admin.
func (s *Service) isAdmin(ctx context.Context, username string) bool {
	if username == "" || username == domain.AnonymousUser {
		return false
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Warn("role lookup failed", zap.String("username", username), zap.Error(err))
		return false
	}
	return user != nil && policy.IsAdmin(user.Role)
}
