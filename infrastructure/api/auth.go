package api

import (
	"context"
	"net/http"

	"github.com/uongozi/uongozi/internal/domain"
)

// registerPayload mirrors the backend's registration contract.
type registerPayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	County       string `json:"county"`
	Constituency string `json:"constituency"`
	Ward         string `json:"ward"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register implements ports.AuthService.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.Session, error) {
	if err := reg.Validate(); err != nil {
		return domain.Session{}, err
	}

	payload := registerPayload{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		Password:     reg.Password,
		County:       reg.County,
		Constituency: reg.Constituency,
		Ward:         reg.Ward,
	}

	var dto sessionDTO
	if err := c.send(ctx, http.MethodPost, "/auth/register", payload, &dto); err != nil {
		return domain.Session{}, err
	}
	if err := checkDTO("session", dto); err != nil {
		return domain.Session{}, err
	}
	return dto.toDomain(), nil
}

// Login implements ports.AuthService.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	var dto sessionDTO
	if err := c.send(ctx, http.MethodPost, "/auth/login", loginPayload(creds), &dto); err != nil {
		return domain.Session{}, err
	}
	if err := checkDTO("session", dto); err != nil {
		return domain.Session{}, err
	}
	return dto.toDomain(), nil
}
