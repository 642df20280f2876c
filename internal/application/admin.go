package application

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/uongozi/uongozi/internal/domain"
)

// adminPageSize is the number of leaders shown per admin dashboard page.
const adminPageSize = 10

// maxSearchDistance is the largest edit distance a non-substring fuzzy
// search hit may have.
const maxSearchDistance = 3

// AdminQuery selects one admin dashboard page: the position tab, the
// geography filters (empty means all), an optional fuzzy name search
// and the 1-based page number.
type AdminQuery struct {
	Position     domain.Position
	County       string
	Constituency string
	Ward         string
	Search       string
	Page         int
}

// Values encodes the query as URL query parameters so a dashboard view
// is shareable and restorable from a link.
func (q AdminQuery) Values() url.Values {
	values := url.Values{}
	values.Set("tab", string(q.Position))
	if q.County != "" {
		values.Set("county", q.County)
	}
	if q.Constituency != "" {
		values.Set("constituency", q.Constituency)
	}
	if q.Ward != "" {
		values.Set("ward", q.Ward)
	}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	return values
}

// AdminQueryFromValues restores a query from URL parameters, the
// inverse of Values. Unknown or malformed parameters fall back to
// defaults rather than failing.
func AdminQueryFromValues(values url.Values) AdminQuery {
	q := AdminQuery{
		Position:     domain.Position(values.Get("tab")),
		County:       values.Get("county"),
		Constituency: values.Get("constituency"),
		Ward:         values.Get("ward"),
		Search:       values.Get("q"),
		Page:         1,
	}
	if !q.Position.Valid() {
		q.Position = domain.PositionGovernor
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	return q
}

// AdminPage is one rendered page of the admin dashboard.
type AdminPage struct {
	// Leaders is the page slice after filtering, search and pagination.
	Leaders []domain.Leader

	// Page is the effective 1-based page number after clamping.
	Page int

	// TotalPages is the page count for the filtered set, at least 1.
	TotalPages int

	// Total counts the filtered set before pagination.
	Total int

	// Filter option lists, in first-seen order over the position tab's
	// leaders.
	Counties       []string
	Constituencies []string
	Wards          []string
}

// AdminDashboard loads the leader management view. The listing is
// refetched on every load so the dashboard reflects concurrent edits,
// then filtered, searched and paginated from the store.
func (a *App) AdminDashboard(ctx context.Context, query AdminQuery) (*AdminPage, error) {
	if _, err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if !query.Position.Valid() {
		return nil, domain.ErrUnknownPosition
	}

	seq := a.store.BeginLeaderFetch()
	leaders, err := a.leaders.ListLeaders(ctx)
	if err != nil {
		return nil, err
	}
	a.store.ReplaceLeaders(seq, leaders)

	return composeAdminPage(a.store.Leaders(), query), nil
}

// composeAdminPage applies the tab, filters, search and pagination to
// a leader listing. Split out for direct testing.
func composeAdminPage(leaders []domain.Leader, query AdminQuery) *AdminPage {
	tab := make([]domain.Leader, 0)
	for _, l := range leaders {
		if l.Position == query.Position {
			tab = append(tab, l)
		}
	}

	page := &AdminPage{
		Counties:       uniqueValues(tab, func(l domain.Leader) string { return l.County }),
		Constituencies: uniqueValues(tab, func(l domain.Leader) string { return l.Constituency }),
		Wards:          uniqueValues(tab, func(l domain.Leader) string { return l.Ward }),
	}

	filtered := make([]domain.Leader, 0, len(tab))
	for _, l := range tab {
		if query.County != "" && l.County != query.County {
			continue
		}
		if query.Constituency != "" && l.Constituency != query.Constituency {
			continue
		}
		if query.Ward != "" && l.Ward != query.Ward {
			continue
		}
		filtered = append(filtered, l)
	}

	if query.Search != "" {
		filtered = searchLeaders(filtered, query.Search)
	}

	page.Total = len(filtered)
	page.TotalPages = (len(filtered) + adminPageSize - 1) / adminPageSize
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}

	current := query.Page
	if current < 1 {
		current = 1
	}
	if current > page.TotalPages {
		current = page.TotalPages
	}
	page.Page = current

	start := (current - 1) * adminPageSize
	end := start + adminPageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	page.Leaders = filtered[start:end]
	return page
}

// searchLeaders ranks leaders against a fuzzy name query. Substring
// matches rank first, then near misses by edit distance; leaders
// further than maxSearchDistance with no substring hit are dropped.
func searchLeaders(leaders []domain.Leader, query string) []domain.Leader {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return leaders
	}

	type scored struct {
		leader   domain.Leader
		distance int
	}
	hits := make([]scored, 0, len(leaders))
	for _, l := range leaders {
		name := strings.ToLower(l.Name)
		if strings.Contains(name, query) {
			hits = append(hits, scored{leader: l, distance: 0})
			continue
		}
		if d := levenshtein.ComputeDistance(name, query); d <= maxSearchDistance {
			hits = append(hits, scored{leader: l, distance: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })

	out := make([]domain.Leader, len(hits))
	for i, h := range hits {
		out[i] = h.leader
	}
	return out
}

// uniqueValues extracts non-empty values in first-seen order.
func uniqueValues(leaders []domain.Leader, extract func(domain.Leader) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, l := range leaders {
		v := extract(l)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// RenameLeader applies a name-only patch, the one inline edit the
// dashboard offers, and installs the backend's updated record.
func (a *App) RenameLeader(ctx context.Context, id, name string) (domain.Leader, error) {
	if _, err := a.requireAdmin(); err != nil {
		return domain.Leader{}, err
	}
	if strings.TrimSpace(name) == "" {
		v := domain.NewValidationError("leader")
		v.AddError("name is required")
		return domain.Leader{}, v
	}

	updated, err := a.leaders.UpdateLeader(ctx, id, domain.LeaderPatch{Name: &name})
	if err != nil {
		return domain.Leader{}, err
	}

	a.store.PatchLeader(updated)
	a.logger.Info("leader renamed", zap.String("leader_id", id))
	return updated, nil
}

// DeleteLeader removes a leader record and drops it from the cached
// listing.
func (a *App) DeleteLeader(ctx context.Context, id string) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}

	if err := a.leaders.DeleteLeader(ctx, id); err != nil {
		return err
	}

	a.store.RemoveLeader(id)
	a.logger.Info("leader deleted", zap.String("leader_id", id))
	return nil
}
