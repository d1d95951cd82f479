package topups

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/dto"
	"github.com/GlebRadaev/topups/internal/service/topupservice"
	"github.com/GlebRadaev/topups/pkg/utils"
	"github.com/GlebRadaev/topups/pkg/validate"
)

//go:generate mockgen -source=topups.go -destination=mock_topups.go -package=topups
type Service interface {
	Request(ctx context.Context, username string, amount decimal.Decimal, method, note string) (string, error)
	MarkPaid(ctx context.Context, txid string, amount *decimal.Decimal, provider, providerTxnID string) error
}

type TopupHandler struct {
	topupService Service
}

func New(topupService Service) *TopupHandler {
	return &TopupHandler{
		topupService: topupService,
	}
}

// Request godoc
//
//	@Summary		Record a topup request
//	@Description	Records a pending topup before checkout. Non-admin users may only request amounts that map to a role.
//	@Tags			Topups
//	@Accept			json
//	@Produce		json
//	@Param			X-Internal-Auth	header		string					true	"Internal shared secret"
//	@Param			request			body		dto.TopupRequestDTO		true	"Topup request"
//	@Success		200				{object}	dto.TopupResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid JSON, amount or amount outside the allow-list"
//	@Failure		401				{object}	utils.Response	"Unauthorized"
//	@Failure		500				{object}	utils.Response	"Ledger write failed"
//	@Router			/internal/topups/request [post]
func (h *TopupHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req dto.TopupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	amount, present, err := validate.ParseAmount(req.Amount)
	if err != nil || !present || !amount.IsPositive() {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive float")
		return
	}

	txID, err := h.topupService.Request(r.Context(), req.GetUsername(), amount, req.GetMethod(), req.GetDescription())
	if err != nil {
		switch {
		case errors.Is(err, topupservice.ErrAmountNotAllowed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			zap.L().Error("topup request failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopupResponseDTO{TxID: txID})
}

// MarkPaid godoc
//
//	@Summary		Mark a topup paid
//	@Description	Approves the topup and promotes the user by the paid amount. Upstream failures are reported with ok=false and status 200.
//	@Tags			Topups
//	@Accept			json
//	@Produce		json
//	@Param			X-Internal-Auth	header		string					true	"Internal shared secret"
//	@Param			request			body		dto.MarkPaidRequestDTO	true	"Payment confirmation"
//	@Success		200				{object}	dto.StatusResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid JSON, missing txid or bad amount"
//	@Failure		401				{object}	utils.Response	"Unauthorized"
//	@Router			/internal/topups/mark-paid [post]
func (h *TopupHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkPaidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	txid := strings.TrimSpace(req.TxID)
	if txid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "txid required")
		return
	}

	var amount *decimal.Decimal
	parsed, present, err := validate.ParseAmount(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be float or null")
		return
	}
	if present {
		amount = &parsed
	}

	if err := h.topupService.MarkPaid(r.Context(), txid, amount, req.GetProvider(), req.ProviderTxnID); err != nil {
		zap.L().Warn("mark paid failed", zap.String("txid", txid), zap.Error(err))
		utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{OK: false, Error: err.Error()})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{OK: true})
}
