package application

import (
	"context"
	"time"

	"github.com/uongozi/uongozi/internal/domain"
	"github.com/uongozi/uongozi/internal/ports"
)

// mockAuthService provides canned authentication responses.
type mockAuthService struct {
	session domain.Session
	err     error

	lastRegistration domain.Registration
	lastCredentials  domain.Credentials
}

func (m *mockAuthService) Register(ctx context.Context, reg domain.Registration) (domain.Session, error) {
	m.lastRegistration = reg
	return m.session, m.err
}

func (m *mockAuthService) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	m.lastCredentials = creds
	return m.session, m.err
}

// mockLeaderService provides canned leader listings and mutations.
type mockLeaderService struct {
	leaders     []domain.Leader
	performance []domain.Leader
	created     domain.Leader
	updated     domain.Leader
	err         error

	listCalls   int
	deletedIDs  []string
	lastCreated domain.NewLeader
	lastPatch   domain.LeaderPatch
}

func (m *mockLeaderService) ListLeaders(ctx context.Context) ([]domain.Leader, error) {
	m.listCalls++
	return m.leaders, m.err
}

func (m *mockLeaderService) ListPerformance(ctx context.Context) ([]domain.Leader, error) {
	return m.performance, m.err
}

func (m *mockLeaderService) CreateLeader(ctx context.Context, leader domain.NewLeader) (domain.Leader, error) {
	m.lastCreated = leader
	return m.created, m.err
}

func (m *mockLeaderService) UpdateLeader(ctx context.Context, id string, patch domain.LeaderPatch) (domain.Leader, error) {
	m.lastPatch = patch
	return m.updated, m.err
}

func (m *mockLeaderService) DeleteLeader(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.err
}

// mockReviewService provides canned review sets and submission results.
type mockReviewService struct {
	all       []domain.Review
	byLeader  map[string][]domain.Review
	submitted domain.Review
	err       error
	submitErr error

	submitCalls    int
	lastSubmission domain.ReviewSubmission
}

func (m *mockReviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return m.all, m.err
}

func (m *mockReviewService) ListLeaderReviews(ctx context.Context, leaderID string) ([]domain.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byLeader[leaderID], nil
}

func (m *mockReviewService) SubmitReview(ctx context.Context, sub domain.ReviewSubmission) (domain.Review, error) {
	m.submitCalls++
	m.lastSubmission = sub
	if m.submitErr != nil {
		return domain.Review{}, m.submitErr
	}
	return m.submitted, nil
}

// mockRegionDirectory accepts every region unless err is set.
type mockRegionDirectory struct {
	err error
}

func (m *mockRegionDirectory) Counties() []string { return []string{"Nakuru"} }

func (m *mockRegionDirectory) Constituencies(county string) []string { return []string{"Naivasha"} }

func (m *mockRegionDirectory) Wards(county, constituency string) []string {
	return []string{"Hells Gate"}
}

func (m *mockRegionDirectory) Validate(geo domain.Geography) error { return m.err }

// Compile-time interface checks for the mocks.
var (
	_ ports.AuthService     = (*mockAuthService)(nil)
	_ ports.LeaderService   = (*mockLeaderService)(nil)
	_ ports.ReviewService   = (*mockReviewService)(nil)
	_ ports.RegionDirectory = (*mockRegionDirectory)(nil)
)

// cooldownRejectionErr implements ports.CooldownRejection for tests.
type cooldownRejectionErr struct {
	next time.Time
}

func (e *cooldownRejectionErr) Error() string { return "cooldown active" }

func (e *cooldownRejectionErr) NextEligibleAt() time.Time { return e.next }

// testFixture bundles an App with its mocks.
type testFixture struct {
	app     *App
	auth    *mockAuthService
	leaders *mockLeaderService
	reviews *mockReviewService
	regions *mockRegionDirectory
	store   *Store
}

func newTestFixture(now time.Time) *testFixture {
	f := &testFixture{
		auth:    &mockAuthService{},
		leaders: &mockLeaderService{},
		reviews: &mockReviewService{byLeader: make(map[string][]domain.Review)},
		regions: &mockRegionDirectory{},
		store:   NewStore(),
	}
	clock := ports.ClockFunc(func() time.Time { return now })
	f.app = NewApp(f.auth, f.leaders, f.reviews, f.regions, f.store, clock, nil)
	return f
}

// signIn installs a citizen session in Hells Gate ward.
func (f *testFixture) signIn(role domain.Role) domain.UserProfile {
	user := domain.UserProfile{
		ID:        "u1",
		FirstName: "Wanjiru",
		Email:     "wanjiru@example.com",
		Geography: domain.Geography{
			County:       "Nakuru",
			Constituency: "Naivasha",
			Ward:         "Hells Gate",
		},
		Role: role,
	}
	f.store.SetSession(domain.Session{User: user, Token: "test-token"})
	return user
}
