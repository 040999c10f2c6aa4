package web

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/adapter"
	"rocodes-admin/internal/domain/ports/repository"

	"github.com/google/uuid"
)

// --- Mock Repositories (Ports) ---

type mockStaffRepo struct {
	repository.StaffRepository // Embed interface for forward compatibility
	mu                         sync.Mutex
	users                      map[string]*model.StaffUser
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{users: make(map[string]*model.StaffUser)}
}

func (m *mockStaffRepo) Save(ctx context.Context, tx repository.Tx, user *model.StaffUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockStaffRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StaffUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockStaffRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.StaffUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStaffRepo) List(ctx context.Context, tx repository.Tx) ([]*model.StaffUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.StaffUser, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type mockGameRepo struct {
	repository.GameRepository
	mu    sync.Mutex
	games map[string]*model.Game
}

func newMockGameRepo() *mockGameRepo {
	return &mockGameRepo{games: make(map[string]*model.Game)}
}

func (m *mockGameRepo) Save(ctx context.Context, tx repository.Tx, game *model.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *game
	m.games[game.ID] = &cp
	return nil
}

func (m *mockGameRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockGameRepo) List(ctx context.Context, tx repository.Tx, offset, limit int) ([]*model.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*model.Game, 0, len(m.games))
	for _, g := range m.games {
		cp := *g
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Slug < all[j].Slug })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *mockGameRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games), nil
}

func (m *mockGameRepo) SetExpiredCodes(ctx context.Context, tx repository.Tx, gameID string, codes []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[gameID]
	if !ok {
		return domain.ErrNotFound
	}
	g.ExpiredCodes = append([]string(nil), codes...)
	return nil
}

type mockCodeRepo struct {
	repository.GameCodeRepository
	mu   sync.Mutex
	rows map[string]map[string]*model.GameCode
}

func newMockCodeRepo() *mockCodeRepo {
	return &mockCodeRepo{rows: make(map[string]map[string]*model.GameCode)}
}

func (m *mockCodeRepo) ListByGame(ctx context.Context, tx repository.Tx, gameID string) ([]*model.GameCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.GameCode, 0, len(m.rows[gameID]))
	for _, c := range m.rows[gameID] {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstSeenAt.Before(out[j].FirstSeenAt) })
	return out, nil
}

func (m *mockCodeRepo) Upsert(ctx context.Context, tx repository.Tx, up repository.CodeUpsert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byCode := m.rows[up.GameID]
	if byCode == nil {
		byCode = make(map[string]*model.GameCode)
		m.rows[up.GameID] = byCode
	}
	key := strings.ToUpper(up.Code)
	if row, ok := byCode[key]; ok {
		row.Status = up.Status
		row.ProviderPriority = up.ProviderPriority
		row.LastSeenAt = time.Now()
		return nil
	}
	byCode[key] = &model.GameCode{
		ID:               uuid.NewString(),
		GameID:           up.GameID,
		Code:             up.Code,
		Status:           up.Status,
		ProviderPriority: up.ProviderPriority,
		FirstSeenAt:      time.Now(),
		LastSeenAt:       time.Now(),
	}
	return nil
}

func (m *mockCodeRepo) DeleteByCodes(ctx context.Context, tx repository.Tx, gameID string, codes []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range codes {
		key := strings.ToUpper(c)
		if _, ok := m.rows[gameID][key]; ok {
			delete(m.rows[gameID], key)
			n++
		}
	}
	return n, nil
}

func (m *mockCodeRepo) DeleteExpired(ctx context.Context, tx repository.Tx, gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for key, row := range m.rows[gameID] {
		if row.Status == model.CodeStatusExpired {
			delete(m.rows[gameID], key)
			n++
		}
	}
	return n, nil
}

// --- Mock Adapters ---

type mockScraper struct {
	mu     sync.Mutex
	result *adapter.ScrapeResult
	err    error
}

func (f *mockScraper) Scrape(ctx context.Context, urls []string) (*adapter.ScrapeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &adapter.ScrapeResult{}, nil
	}
	return f.result, nil
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *mockNotifier) Notify(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, text)
	return nil
}

func (n *mockNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

// mustUpsert builds a low-priority active upsert so a later candidate at a
// normal priority can claim the row.
func mustUpsert(gameID, code string) repository.CodeUpsert {
	return repository.CodeUpsert{
		GameID:           gameID,
		Code:             code,
		Status:           model.CodeStatusActive,
		ProviderPriority: 1,
	}
}
