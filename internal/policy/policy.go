// Package policy maps paid amounts to subscription roles and roles to entitlements.
package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleNormal = "normal"
	RoleVIPI   = "vipi"
	RoleVIPII  = "vipii"
	RoleVIPIII = "vipiii"
	RoleAdmin  = "admin"
)

// daysPerMonth is the length of one renewal block.
const daysPerMonth = 30

var ErrInvalidRoleMap = errors.New("invalid role map")

type Entitlement struct {
	Sites      int
	CanPrebook bool
}

var entitlements = map[string]Entitlement{
	RoleVIPI:   {Sites: 3, CanPrebook: true},
	RoleVIPII:  {Sites: 6, CanPrebook: true},
	RoleVIPIII: {Sites: 10, CanPrebook: true},
	RoleNormal: {Sites: 0, CanPrebook: false},
	RoleAdmin:  {Sites: 999, CanPrebook: true},
}

// RoleMap is keyed by the amount rounded to two places, see AmountKey.
type RoleMap map[string]string

func DefaultRoleMap() RoleMap {
	return RoleMap{
		"1500.00": RoleVIPI,
		"2500.00": RoleVIPII,
		"3500.00": RoleVIPIII,
	}
}

// ParseRoleMap reads a JSON object like {"1500":"vipi"}. An empty string yields the default map.
func ParseRoleMap(raw string) (RoleMap, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultRoleMap(), nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoleMap, err)
	}

	roles := make(RoleMap, len(obj))
	for k, v := range obj {
		amount, err := decimal.NewFromString(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q: %w", ErrInvalidRoleMap, k, err)
		}
		roles[AmountKey(amount)] = strings.TrimSpace(fmt.Sprint(v))
	}
	return roles, nil
}

func AmountKey(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

func IsAdmin(role string) bool {
	return strings.EqualFold(strings.TrimSpace(role), RoleAdmin)
}

type Policy struct {
	roles   RoleMap
	amounts []decimal.Decimal
	months  int
}

func New(roles RoleMap, months int) *Policy {
	amounts := make([]decimal.Decimal, 0, len(roles))
	for k := range roles {
		amounts = append(amounts, decimal.RequireFromString(k))
	}
	sort.Slice(amounts, func(i, j int) bool {
		return amounts[i].LessThan(amounts[j])
	})

	return &Policy{
		roles:   roles,
		amounts: amounts,
		months:  max(1, months),
	}
}

// RoleFor returns the role bought by amount.
func (p *Policy) RoleFor(amount decimal.Decimal) (string, bool) {
	role, ok := p.roles[AmountKey(amount)]
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

// Allows reports whether a non-admin user may request amount. An empty map allows everything.
func (p *Policy) Allows(amount decimal.Decimal) bool {
	if len(p.roles) == 0 {
		return true
	}
	_, ok := p.roles[AmountKey(amount)]
	return ok
}

func (p *Policy) AllowedAmounts() []decimal.Decimal {
	return append([]decimal.Decimal(nil), p.amounts...)
}

// FormatAllowed renders the allow-list as "1500, 2500, 3500".
func (p *Policy) FormatAllowed() string {
	parts := make([]string, len(p.amounts))
	for i, a := range p.amounts {
		parts[i] = a.Round(2).String()
	}
	return strings.Join(parts, ", ")
}

func (p *Policy) Entitlement(role string) (Entitlement, bool) {
	e, ok := entitlements[strings.ToLower(strings.TrimSpace(role))]
	return e, ok
}

func (p *Policy) Months() int {
	return p.months
}

// Expiration is now plus the configured number of 30-day blocks.
func (p *Policy) Expiration(now time.Time) time.Time {
	return now.AddDate(0, 0, daysPerMonth*p.months)
}
