package api

import (
	"context"
	"net/http"

	"github.com/uongozi/uongozi/internal/domain"
)

// newLeaderPayload mirrors the backend's leader creation contract.
// Geography fields are serialized only when the position requires them.
type newLeaderPayload struct {
	Name         string             `json:"name"`
	Position     string             `json:"position"`
	Level        string             `json:"level"`
	County       string             `json:"county,omitempty"`
	Constituency string             `json:"constituency,omitempty"`
	Ward         string             `json:"ward,omitempty"`
	Manifesto    []manifestoItemDTO `json:"manifesto"`
}

// updateLeaderResponse unwraps the backend's update envelope.
type updateLeaderResponse struct {
	Leader leaderDTO `json:"leader"`
}

// ListLeaders implements ports.LeaderService.
func (c *Client) ListLeaders(ctx context.Context) ([]domain.Leader, error) {
	var dtos []leaderDTO
	if err := c.get(ctx, "/leaders/getLeaders", &dtos); err != nil {
		return nil, err
	}
	return leadersToDomain(dtos)
}

// ListPerformance implements ports.LeaderService. The returned listing
// carries rating fields populated by the backend.
func (c *Client) ListPerformance(ctx context.Context) ([]domain.Leader, error) {
	var dtos []leaderDTO
	if err := c.get(ctx, "/leaders/performance", &dtos); err != nil {
		return nil, err
	}
	return leadersToDomain(dtos)
}

// CreateLeader implements ports.LeaderService. A leader that already
// exists for the same region and position surfaces as a conflict;
// callers detect it with IsDuplicateLeader.
func (c *Client) CreateLeader(ctx context.Context, leader domain.NewLeader) (domain.Leader, error) {
	if err := leader.Validate(); err != nil {
		return domain.Leader{}, err
	}

	manifesto := make([]manifestoItemDTO, len(leader.Manifesto))
	for i, m := range leader.Manifesto {
		manifesto[i] = manifestoItemDTO{Title: m.Title}
	}
	payload := newLeaderPayload{
		Name:         leader.Name,
		Position:     string(leader.Position),
		Level:        string(leader.Level),
		County:       leader.County,
		Constituency: leader.Constituency,
		Ward:         leader.Ward,
		Manifesto:    manifesto,
	}

	var dto leaderDTO
	if err := c.send(ctx, http.MethodPost, "/leaders", payload, &dto); err != nil {
		return domain.Leader{}, err
	}
	if err := checkDTO("leader", dto); err != nil {
		return domain.Leader{}, err
	}
	return dto.toDomain(), nil
}

// UpdateLeader implements ports.LeaderService.
func (c *Client) UpdateLeader(ctx context.Context, id string, patch domain.LeaderPatch) (domain.Leader, error) {
	var envelope updateLeaderResponse
	if err := c.send(ctx, http.MethodPut, "/leaders/"+id, patch, &envelope); err != nil {
		return domain.Leader{}, err
	}
	if err := checkDTO("leader", envelope.Leader); err != nil {
		return domain.Leader{}, err
	}
	return envelope.Leader.toDomain(), nil
}

// DeleteLeader implements ports.LeaderService.
func (c *Client) DeleteLeader(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/leaders/"+id, nil, nil)
}
