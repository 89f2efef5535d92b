package adminhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type MeRepo struct {
	client *Client
}

func NewMeRepo(client *Client) *MeRepo {
	return &MeRepo{client: client}
}

type meResponseDTO struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Verify confirms the caller's session resolves to a moderator principal.
func (r *MeRepo) Verify(ctx context.Context) (model.Principal, error) {
	var response meResponseDTO
	if err := r.client.DoJSON(ctx, http.MethodGet, "/admin/me", nil, nil, &response); err != nil {
		return model.Principal{}, err
	}

	return model.Principal{
		UserID:      strings.TrimSpace(response.UserID),
		Email:       strings.TrimSpace(response.Email),
		IsModerator: response.IsAdmin,
	}, nil
}
