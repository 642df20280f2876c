package application

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/uongozi/uongozi/internal/domain"
)

// topLeadersLimit caps each ranking list on the home dashboard.
const topLeadersLimit = 20

// HomeView is everything the home dashboard renders for one level tab:
// the viewer's leader at that level, the leader's scoreboard, the
// viewer's review eligibility for that leader and the national ranking
// lists.
type HomeView struct {
	Level domain.Level

	// Leader is the viewer's leader at Level, nil when the listing has
	// no match for the viewer's geography.
	Leader *domain.Leader

	// Scoreboard is Leader's aggregated performance, zero when Leader
	// is nil.
	Scoreboard domain.Scoreboard

	// Eligibility is the viewer's review state for Leader, zero when
	// Leader is nil.
	Eligibility domain.Eligibility

	TopGovernors []domain.Leader
	TopMPs       []domain.Leader
	TopMCAs      []domain.Leader
}

// RefreshHome fetches the performance listing and the full review set
// concurrently, installs both under the last-request-wins rule, and
// derives the view for the requested level from whatever the store now
// holds. Scores and eligibility are recomputed from scratch on every
// call; nothing aggregated is ever cached.
func (a *App) RefreshHome(ctx context.Context, level domain.Level) (*HomeView, error) {
	user, err := a.requireSession()
	if err != nil {
		return nil, err
	}
	if !level.Valid() {
		return nil, domain.ErrUnknownLevel
	}

	leaderSeq := a.store.BeginLeaderFetch()
	reviewSeq := a.store.BeginReviewFetch()

	var (
		leaders []domain.Leader
		reviews []domain.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leaders, err = a.leaders.ListPerformance(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = a.reviews.ListReviews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.logger.Warn("home refresh failed", zap.Error(err))
		return nil, err
	}

	if !a.store.ReplaceLeaders(leaderSeq, leaders) {
		a.logger.Debug("stale leader fetch discarded", zap.Uint64("seq", leaderSeq))
	}
	if !a.store.ReplaceReviews(reviewSeq, reviews) {
		a.logger.Debug("stale review fetch discarded", zap.Uint64("seq", reviewSeq))
	}

	// Derive from the store, not the local fetch results: a newer
	// concurrent refresh may have installed fresher data.
	return a.composeHome(level, user), nil
}

// HomeFromStore derives the view for a level from cached data without
// touching the backend, used when switching level tabs.
func (a *App) HomeFromStore(level domain.Level) (*HomeView, error) {
	user, err := a.requireSession()
	if err != nil {
		return nil, err
	}
	if !level.Valid() {
		return nil, domain.ErrUnknownLevel
	}
	return a.composeHome(level, user), nil
}

func (a *App) composeHome(level domain.Level, user domain.UserProfile) *HomeView {
	leaders := a.store.Leaders()
	reviews := a.store.Reviews()

	view := &HomeView{
		Level:        level,
		TopGovernors: domain.TopLeadersByPosition(leaders, reviews, domain.PositionGovernor, topLeadersLimit),
		TopMPs:       domain.TopLeadersByPosition(leaders, reviews, domain.PositionMP, topLeadersLimit),
		TopMCAs:      domain.TopLeadersByPosition(leaders, reviews, domain.PositionMCA, topLeadersLimit),
	}

	leader, ok := domain.SelectLeader(leaders, level, &user.Geography)
	if !ok {
		a.logger.Debug("no leader for level",
			zap.String("level", string(level)),
			zap.String("county", user.County))
		return view
	}

	view.Leader = &leader
	view.Scoreboard = domain.ScoreLeader(leader, reviews)
	view.Eligibility = domain.CheckEligibility(reviews, leader.ID, user.ID, a.clock.Now())
	return view
}

// LeaderView is the rating page composition for one leader: the record,
// its scoreboard and the viewer's eligibility, all derived from a fresh
// per-leader review fetch.
type LeaderView struct {
	Leader      domain.Leader
	Scoreboard  domain.Scoreboard
	Eligibility domain.Eligibility
	Topics      []string
}

// ViewLeader loads the rating page for one leader. The review set is
// fetched fresh so the eligibility verdict reflects reviews submitted
// from other sessions.
func (a *App) ViewLeader(ctx context.Context, leaderID string) (*LeaderView, error) {
	user, err := a.requireSession()
	if err != nil {
		return nil, err
	}

	leader, ok := a.findLeader(leaderID)
	if !ok {
		// The listing may be stale; refetch before giving up.
		seq := a.store.BeginLeaderFetch()
		leaders, err := a.leaders.ListLeaders(ctx)
		if err != nil {
			return nil, err
		}
		a.store.ReplaceLeaders(seq, leaders)
		if leader, ok = a.findLeader(leaderID); !ok {
			return nil, domain.ErrLeaderNotFound
		}
	}

	reviews, err := a.reviews.ListLeaderReviews(ctx, leaderID)
	if err != nil {
		return nil, err
	}

	return &LeaderView{
		Leader:      leader,
		Scoreboard:  domain.ScoreLeader(leader, reviews),
		Eligibility: domain.CheckEligibility(reviews, leaderID, user.ID, a.clock.Now()),
		Topics:      domain.ManifestoTopics(leader.Level),
	}, nil
}

func (a *App) findLeader(id string) (domain.Leader, bool) {
	for _, l := range a.store.Leaders() {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Leader{}, false
}
