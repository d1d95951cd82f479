package policy

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleMap(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    RoleMap
		expectedErr error
	}{
		{
			name:     "Empty string falls back to default",
			raw:      "  ",
			expected: DefaultRoleMap(),
		},
		{
			name: "Override map",
			raw:  `{"1500":"vipi","2500.5":"vipii","100":"trial"}`,
			expected: RoleMap{
				"1500.00": "vipi",
				"2500.50": "vipii",
				"100.00":  "trial",
			},
		},
		{
			name:     "Empty object disables the map",
			raw:      `{}`,
			expected: RoleMap{},
		},
		{
			name:     "Non-string role values are stringified",
			raw:      `{"999": 42}`,
			expected: RoleMap{"999.00": "42"},
		},
		{
			name:        "Invalid JSON",
			raw:         `{"1500":`,
			expectedErr: ErrInvalidRoleMap,
		},
		{
			name:        "Non-numeric amount",
			raw:         `{"abc":"vipi"}`,
			expectedErr: ErrInvalidRoleMap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles, err := ParseRoleMap(tt.raw)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, roles)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, roles)
		})
	}
}

func TestPolicy_RoleFor(t *testing.T) {
	p := New(DefaultRoleMap(), 1)

	tests := []struct {
		amount   string
		role     string
		expected bool
	}{
		{"1500", RoleVIPI, true},
		{"1500.00", RoleVIPI, true},
		{"1500.001", RoleVIPI, true},
		{"2500", RoleVIPII, true},
		{"3500", RoleVIPIII, true},
		{"1499", "", false},
		{"0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			role, ok := p.RoleFor(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.role, role)
		})
	}
}

func TestPolicy_Allows(t *testing.T) {
	p := New(DefaultRoleMap(), 1)
	assert.True(t, p.Allows(decimal.NewFromInt(1500)))
	assert.False(t, p.Allows(decimal.NewFromInt(1499)))

	open := New(RoleMap{}, 1)
	assert.True(t, open.Allows(decimal.NewFromInt(1499)))
}

func TestPolicy_FormatAllowed(t *testing.T) {
	assert.Equal(t, "1500, 2500, 3500", New(DefaultRoleMap(), 1).FormatAllowed())
	assert.Equal(t, "99.5, 100", New(RoleMap{"100.00": "a", "99.50": "b"}, 1).FormatAllowed())
	assert.Equal(t, "", New(RoleMap{}, 1).FormatAllowed())

	amounts := New(DefaultRoleMap(), 1).AllowedAmounts()
	require.Len(t, amounts, 3)
	assert.True(t, amounts[0].Equal(decimal.NewFromInt(1500)))
	assert.True(t, amounts[2].Equal(decimal.NewFromInt(3500)))
}

func TestPolicy_Entitlement(t *testing.T) {
	p := New(DefaultRoleMap(), 1)

	e, ok := p.Entitlement("VIPII")
	require.True(t, ok)
	assert.Equal(t, Entitlement{Sites: 6, CanPrebook: true}, e)

	e, ok = p.Entitlement(RoleNormal)
	require.True(t, ok)
	assert.Equal(t, Entitlement{Sites: 0, CanPrebook: false}, e)

	_, ok = p.Entitlement("trial")
	assert.False(t, ok)
}

func TestPolicy_Expiration(t *testing.T) {
	now := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		months   int
		expected time.Time
	}{
		{1, now.Add(30 * 24 * time.Hour)},
		{3, now.Add(90 * 24 * time.Hour)},
		{0, now.Add(30 * 24 * time.Hour)},
		{-2, now.Add(30 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		p := New(DefaultRoleMap(), tt.months)
		assert.Equal(t, tt.expected, p.Expiration(now))
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin("admin"))
	assert.True(t, IsAdmin(" Admin "))
	assert.False(t, IsAdmin("vipi"))
	assert.False(t, IsAdmin(""))
}
