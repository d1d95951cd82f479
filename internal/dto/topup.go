package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GlebRadaev/topups/internal/domain"
)

const (
	DefaultMethod      = "Stripe/Checkout"
	DefaultDescription = "Top-up"
	DefaultProvider    = "Stripe"
)

type TopupUserDTO struct {
	Username any `json:"Username" swaggertype:"string" example:"alice"`
}

type TopupRequestDTO struct {
	User        *TopupUserDTO   `json:"user"`
	Amount      json.RawMessage `json:"amount" swaggertype:"number" example:"1500"`
	Method      string          `json:"method" example:"Stripe/Checkout"`
	Description string          `json:"description" example:"Top-up"`
}

// GetUsername falls back to "-" when the user or its name is missing.
func (d *TopupRequestDTO) GetUsername() string {
	if d.User == nil || d.User.Username == nil {
		return domain.AnonymousUser
	}
	name := strings.TrimSpace(fmt.Sprint(d.User.Username))
	if name == "" {
		return domain.AnonymousUser
	}
	return name
}

func (d *TopupRequestDTO) GetMethod() string {
	if d.Method == "" {
		return DefaultMethod
	}
	return d.Method
}

func (d *TopupRequestDTO) GetDescription() string {
	if d.Description == "" {
		return DefaultDescription
	}
	return d.Description
}

type TopupResponseDTO struct {
	TxID string `json:"TxID" example:"TU2601101200001234567"`
}

type MarkPaidRequestDTO struct {
	TxID          string          `json:"txid" example:"TU2601101200001234567"`
	Amount        json.RawMessage `json:"amount" swaggertype:"number" example:"1500"`
	Provider      string          `json:"provider" example:"Stripe"`
	ProviderTxnID string          `json:"provider_txn_id" example:"pi_3Nx"`
}

func (d *MarkPaidRequestDTO) GetProvider() string {
	if d.Provider == "" {
		return DefaultProvider
	}
	return d.Provider
}

// StatusResponseDTO is returned by mark-paid and the health probes.
type StatusResponseDTO struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"API is running"`
}
