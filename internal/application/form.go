package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/uongozi/uongozi/internal/domain"
)

// NewLeaderForm is the admin leader creation form. The chosen position
// drives everything else: the level is derived, only the geography
// subset that position requires is read, and an empty manifesto is
// pre-filled from the topic catalog for the derived level.
type NewLeaderForm struct {
	Name         string
	Position     domain.Position
	County       string
	Constituency string
	Ward         string

	// Manifesto overrides the catalog default when non-empty.
	Manifesto []domain.ManifestoItem
}

// build derives the backend payload from the form.
func (f NewLeaderForm) build() (domain.NewLeader, error) {
	if !f.Position.Valid() {
		return domain.NewLeader{}, domain.ErrUnknownPosition
	}
	level := domain.LevelFor(f.Position)

	leader := domain.NewLeader{
		Name:      f.Name,
		Position:  f.Position,
		Level:     level,
		Manifesto: f.Manifesto,
	}
	if len(leader.Manifesto) == 0 {
		leader.Manifesto = domain.DefaultManifesto(level)
	}

	// Only the subset the position requires is carried; a ward typed
	// into a governor form is discarded, not validated.
	switch f.Position {
	case domain.PositionGovernor:
		leader.County = f.County
	case domain.PositionMP:
		leader.County = f.County
		leader.Constituency = f.Constituency
	case domain.PositionMCA:
		leader.County = f.County
		leader.Constituency = f.Constituency
		leader.Ward = f.Ward
	}

	if err := leader.Validate(); err != nil {
		return domain.NewLeader{}, err
	}
	return leader, nil
}

// CreateLeader validates the form, checks its geography against the
// region directory and creates the leader record. A duplicate for the
// same region and position surfaces as the backend's conflict error for
// inline display.
func (a *App) CreateLeader(ctx context.Context, form NewLeaderForm) (domain.Leader, error) {
	if _, err := a.requireAdmin(); err != nil {
		return domain.Leader{}, err
	}

	payload, err := form.build()
	if err != nil {
		return domain.Leader{}, err
	}

	if payload.County != "" {
		geo := domain.Geography{
			County:       payload.County,
			Constituency: payload.Constituency,
			Ward:         payload.Ward,
		}
		if err := a.regions.Validate(geo); err != nil {
			return domain.Leader{}, fmt.Errorf("unknown region: %w", err)
		}
	}

	created, err := a.leaders.CreateLeader(ctx, payload)
	if err != nil {
		return domain.Leader{}, err
	}

	a.store.AppendLeader(created)
	a.logger.Info("leader created",
		zap.String("leader_id", created.ID),
		zap.String("position", string(created.Position)))
	return created, nil
}
