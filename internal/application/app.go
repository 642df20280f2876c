package application

import (
	"time"

	"go.uber.org/zap"

	"github.com/uongozi/uongozi/internal/ports"
)

// App wires the domain, the store and the backend services into the
// operations the views invoke. All state flows through the store; App
// itself holds only collaborators.
type App struct {
	auth    ports.AuthService
	leaders ports.LeaderService
	reviews ports.ReviewService
	regions ports.RegionDirectory
	store   *Store
	clock   ports.Clock
	logger  *zap.Logger
}

// NewApp assembles the application layer. A nil clock falls back to
// wall time and a nil logger to a no-op logger.
func NewApp(
	auth ports.AuthService,
	leaders ports.LeaderService,
	reviews ports.ReviewService,
	regions ports.RegionDirectory,
	store *Store,
	clock ports.Clock,
	logger *zap.Logger,
) *App {
	if clock == nil {
		clock = ports.ClockFunc(time.Now)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		auth:    auth,
		leaders: leaders,
		reviews: reviews,
		regions: regions,
		store:   store,
		clock:   clock,
		logger:  logger,
	}
}

// Store exposes the process-wide state for read access by views.
func (a *App) Store() *Store { return a.store }
