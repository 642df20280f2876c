package application

import (
	"sync"

	"github.com/uongozi/uongozi/internal/domain"
)

// Store is the process-wide client state: the authenticated session,
// the leader listing and the review set. Views read from it; fetch
// operations replace its slices wholesale. A mutex guards every access,
// and fetch-replace operations carry a sequence token so a stale
// response that arrives after a newer one is discarded rather than
// clobbering fresher data.
type Store struct {
	mu sync.RWMutex

	session *domain.Session
	leaders []domain.Leader
	reviews []domain.Review

	leaderSeqIssued  uint64
	leaderSeqApplied uint64
	reviewSeqIssued  uint64
	reviewSeqApplied uint64
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Session returns a copy of the current session, or nil when signed out.
func (s *Store) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// Token returns the current bearer token, empty when signed out. Its
// signature matches the API client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// SetSession installs the session produced by registration or login.
func (s *Store) SetSession(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
}

// ClearSession signs the user out. Only authentication state is
// cleared; cached leaders and reviews are public data and survive.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Leaders returns a copy of the cached leader listing.
func (s *Store) Leaders() []domain.Leader {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Leader, len(s.leaders))
	copy(out, s.leaders)
	return out
}

// Reviews returns a copy of the cached review set.
func (s *Store) Reviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// BeginLeaderFetch issues the sequence token for a leader fetch. The
// matching ReplaceLeaders call only applies while no later fetch has
// already landed.
func (s *Store) BeginLeaderFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderSeqIssued++
	return s.leaderSeqIssued
}

// ReplaceLeaders installs a fetched listing. It reports whether the
// data was applied; a false return means a newer fetch already landed
// and this response was discarded.
func (s *Store) ReplaceLeaders(seq uint64, leaders []domain.Leader) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.leaderSeqApplied {
		return false
	}
	s.leaderSeqApplied = seq
	s.leaders = make([]domain.Leader, len(leaders))
	copy(s.leaders, leaders)
	return true
}

// BeginReviewFetch issues the sequence token for a review fetch.
func (s *Store) BeginReviewFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewSeqIssued++
	return s.reviewSeqIssued
}

// ReplaceReviews installs a fetched review set under the same
// last-request-wins rule as ReplaceLeaders.
func (s *Store) ReplaceReviews(seq uint64, reviews []domain.Review) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.reviewSeqApplied {
		return false
	}
	s.reviewSeqApplied = seq
	s.reviews = make([]domain.Review, len(reviews))
	copy(s.reviews, reviews)
	return true
}

// AppendLeader adds a newly created leader to the cached listing.
func (s *Store) AppendLeader(leader domain.Leader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaders = append(s.leaders, leader)
}

// PatchLeader replaces the cached record with the backend's updated
// one. A leader not currently cached is ignored.
func (s *Store) PatchLeader(updated domain.Leader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leaders {
		if s.leaders[i].ID == updated.ID {
			s.leaders[i] = updated
			return
		}
	}
}

// RemoveLeader drops a deleted leader from the cached listing.
func (s *Store) RemoveLeader(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leaders {
		if s.leaders[i].ID == id {
			s.leaders = append(s.leaders[:i], s.leaders[i+1:]...)
			return
		}
	}
}

// AppendReview adds an accepted submission to the cached review set.
func (s *Store) AppendReview(review domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, review)
}
