package credentials

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/service/credentialservice"
	"github.com/GlebRadaev/topups/pkg/utils"
)

const TokenHeader = "X-API-Token"

//go:generate mockgen -source=credentials.go -destination=mock_credentials.go -package=credentials
type Service interface {
	Open(token string) (string, io.ReadCloser, error)
}

type CredentialHandler struct {
	credentialService Service
}

func New(credentialService Service) *CredentialHandler {
	return &CredentialHandler{
		credentialService: credentialService,
	}
}

// GetCredentials godoc
//
//	@Summary		Download a credential file
//	@Description	Streams the JSON file mapped to the presented API token.
//	@Tags			Credentials
//	@Produce		json
//	@Param			X-API-Token	header		string	true	"API token"
//	@Success		200			{file}		file	"Credential file"
//	@Failure		403			{object}	utils.Response	"Unauthorized or unknown API token"
//	@Failure		404			{object}	utils.Response	"Mapped file is missing"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/get-credentials [get]
func (h *CredentialHandler) GetCredentials(w http.ResponseWriter, r *http.Request) {
	name, file, err := h.credentialService.Open(r.Header.Get(TokenHeader))
	if err != nil {
		switch {
		case errors.Is(err, credentialservice.ErrUnknownToken):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized or unknown API token")
		case errors.Is(err, credentialservice.ErrFileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			zap.L().Error("can't open credential file", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		zap.L().Error("can't stream credential file", zap.String("file", name), zap.Error(err))
	}
}
