// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"io"
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

// ---- games ----

type memGameRepo struct {
	mu      sync.RWMutex
	store   map[string]*model.Game
	saveErr error
}

func newMemGameRepo() *memGameRepo {
	return &memGameRepo{store: make(map[string]*model.Game)}
}

func (m *memGameRepo) Save(ctx context.Context, tx repository.Tx, game *model.Game) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *game
	m.store[game.ID] = &cp
	return nil
}

func (m *memGameRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memGameRepo) FindBySlug(ctx context.Context, tx repository.Tx, slug string) (*model.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.store {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memGameRepo) List(ctx context.Context, tx repository.Tx, offset, limit int) ([]*model.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*model.Game, 0, len(m.store))
	for _, g := range m.store {
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

func (m *memGameRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store), nil
}

func (m *memGameRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *memGameRepo) SetExpiredCodes(ctx context.Context, tx repository.Tx, gameID string, codes []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.store[gameID]
	if !ok {
		return domain.ErrNotFound
	}
	g.ExpiredCodes = append([]string(nil), codes...)
	return nil
}

var _ repository.GameRepository = (*memGameRepo)(nil)

// ---- game codes ----

type memCodeRepo struct {
	mu        sync.RWMutex
	store     map[string]map[string]*model.GameCode // gameID -> upper(code) -> row
	seq       int
	upsertErr error
}

func newMemCodeRepo() *memCodeRepo {
	return &memCodeRepo{store: make(map[string]map[string]*model.GameCode)}
}

func (m *memCodeRepo) ListByGame(ctx context.Context, tx repository.Tx, gameID string) ([]*model.GameCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows := make([]*model.GameCode, 0, len(m.store[gameID]))
	for _, c := range m.store[gameID] {
		cp := *c
		rows = append(rows, &cp)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FirstSeenAt.Equal(rows[j].FirstSeenAt) {
			return rows[i].Code < rows[j].Code
		}
		return rows[i].FirstSeenAt.Before(rows[j].FirstSeenAt)
	})
	return rows, nil
}

func (m *memCodeRepo) Upsert(ctx context.Context, tx repository.Tx, up repository.CodeUpsert) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	byCode := m.store[up.GameID]
	if byCode == nil {
		byCode = make(map[string]*model.GameCode)
		m.store[up.GameID] = byCode
	}
	key := strings.ToUpper(up.Code)
	now := time.Now()
	var rewards *string
	if up.RewardsText != "" {
		r := up.RewardsText
		rewards = &r
	}
	var level *int
	if up.LevelRequirement != 0 {
		l := up.LevelRequirement
		level = &l
	}
	if row, ok := byCode[key]; ok {
		row.Code = up.Code
		row.Status = up.Status
		row.RewardsText = rewards
		row.LevelRequirement = level
		row.IsNew = up.IsNew
		row.ProviderPriority = up.ProviderPriority
		row.LastSeenAt = now
		return nil
	}
	m.seq++
	byCode[key] = &model.GameCode{
		ID:               uuid.NewString(),
		GameID:           up.GameID,
		Code:             up.Code,
		Status:           up.Status,
		RewardsText:      rewards,
		LevelRequirement: level,
		IsNew:            up.IsNew,
		ProviderPriority: up.ProviderPriority,
		FirstSeenAt:      now.Add(time.Duration(m.seq) * time.Microsecond),
		LastSeenAt:       now,
	}
	return nil
}

func (m *memCodeRepo) DeleteByCodes(ctx context.Context, tx repository.Tx, gameID string, codes []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byCode := m.store[gameID]
	n := 0
	for _, c := range codes {
		key := strings.ToUpper(c)
		if _, ok := byCode[key]; ok {
			delete(byCode, key)
			n++
		}
	}
	return n, nil
}

func (m *memCodeRepo) DeleteExpired(ctx context.Context, tx repository.Tx, gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for key, row := range m.store[gameID] {
		if row.Status == model.CodeStatusExpired {
			delete(m.store[gameID], key)
			n++
		}
	}
	return n, nil
}

// seed inserts a row directly, bypassing the reconciler.
func (m *memCodeRepo) seed(gameID, code, status string, priority int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byCode := m.store[gameID]
	if byCode == nil {
		byCode = make(map[string]*model.GameCode)
		m.store[gameID] = byCode
	}
	m.seq++
	now := time.Now()
	byCode[strings.ToUpper(code)] = &model.GameCode{
		ID:               uuid.NewString(),
		GameID:           gameID,
		Code:             code,
		Status:           status,
		ProviderPriority: priority,
		FirstSeenAt:      now.Add(time.Duration(m.seq) * time.Microsecond),
		LastSeenAt:       now,
	}
}

func (m *memCodeRepo) get(gameID, code string) *model.GameCode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row := m.store[gameID][strings.ToUpper(code)]
	if row == nil {
		return nil
	}
	cp := *row
	return &cp
}

var _ repository.GameCodeRepository = (*memCodeRepo)(nil)

// ---- articles ----

type memArticleRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Article
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{store: make(map[string]*model.Article)}
}

func (m *memArticleRepo) Save(ctx context.Context, tx repository.Tx, article *model.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *article
	m.store[article.ID] = &cp
	return nil
}

func (m *memArticleRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memArticleRepo) FindBySlug(ctx context.Context, tx repository.Tx, slug string) (*model.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.store {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memArticleRepo) List(ctx context.Context, tx repository.Tx, status string, offset, limit int) ([]*model.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*model.Article, 0, len(m.store))
	for _, a := range m.store {
		if status != "" && a.Status != status {
			continue
		}
		cp := *a
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

func (m *memArticleRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

var _ repository.ArticleRepository = (*memArticleRepo)(nil)

// ---- checklists ----

type memChecklistRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Checklist
}

func newMemChecklistRepo() *memChecklistRepo {
	return &memChecklistRepo{store: make(map[string]*model.Checklist)}
}

func (m *memChecklistRepo) Save(ctx context.Context, tx repository.Tx, list *model.Checklist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *list
	cp.Items = append([]model.ChecklistItem(nil), list.Items...)
	m.store[list.ID] = &cp
	return nil
}

func (m *memChecklistRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Checklist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	cp.Items = append([]model.ChecklistItem(nil), l.Items...)
	return &cp, nil
}

func (m *memChecklistRepo) ListByGame(ctx context.Context, tx repository.Tx, gameID string) ([]*model.Checklist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Checklist
	for _, l := range m.store {
		if l.GameID != gameID {
			continue
		}
		cp := *l
		cp.Items = append([]model.ChecklistItem(nil), l.Items...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *memChecklistRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

var _ repository.ChecklistRepository = (*memChecklistRepo)(nil)

// ---- media ----

type memMediaRepo struct {
	mu      sync.RWMutex
	store   map[string]*model.MediaAsset
	saveErr error
}

func newMemMediaRepo() *memMediaRepo {
	return &memMediaRepo{store: make(map[string]*model.MediaAsset)}
}

func (m *memMediaRepo) Save(ctx context.Context, tx repository.Tx, asset *model.MediaAsset) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *asset
	m.store[asset.ID] = &cp
	return nil
}

func (m *memMediaRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.MediaAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memMediaRepo) List(ctx context.Context, tx repository.Tx, offset, limit int) ([]*model.MediaAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*model.MediaAsset, 0, len(m.store))
	for _, a := range m.store {
		cp := *a
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memMediaRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

var _ repository.MediaRepository = (*memMediaRepo)(nil)

// ---- staff ----

type memStaffRepo struct {
	mu    sync.RWMutex
	store map[string]*model.StaffUser
}

func newMemStaffRepo() *memStaffRepo {
	return &memStaffRepo{store: make(map[string]*model.StaffUser)}
}

func (m *memStaffRepo) Save(ctx context.Context, tx repository.Tx, user *model.StaffUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.store[user.ID] = &cp
	return nil
}

func (m *memStaffRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StaffUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStaffRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.StaffUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStaffRepo) List(ctx context.Context, tx repository.Tx) ([]*model.StaffUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.StaffUser, 0, len(m.store))
	for _, u := range m.store {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

var _ repository.StaffRepository = (*memStaffRepo)(nil)

// ---- scraper ----

// fakeScraper returns canned results and records how it was called.
type fakeScraper struct {
	mu      sync.Mutex
	result  *adapter.ScrapeResult
	err     error
	calls   int
	lastURL []string
}

func (f *fakeScraper) Scrape(ctx context.Context, urls []string) (*adapter.ScrapeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastURL = append([]string(nil), urls...)
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &adapter.ScrapeResult{}, nil
	}
	return f.result, nil
}

var _ adapter.SourceScraper = (*fakeScraper)(nil)

// ---- search index ----

type memSearchIndex struct {
	mu   sync.Mutex
	docs map[string]adapter.SearchDoc
}

func newMemSearchIndex() *memSearchIndex {
	return &memSearchIndex{docs: make(map[string]adapter.SearchDoc)}
}

func (m *memSearchIndex) Index(ctx context.Context, doc adapter.SearchDoc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = doc
	return nil
}

func (m *memSearchIndex) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

func (m *memSearchIndex) Query(ctx context.Context, q string, limit int) ([]adapter.SearchHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q = strings.ToLower(q)
	var hits []adapter.SearchHit
	for _, d := range m.docs {
		if strings.Contains(strings.ToLower(d.Title+" "+d.Body), q) {
			hits = append(hits, adapter.SearchHit{ID: d.ID, Kind: d.Kind, Title: d.Title, Slug: d.Slug, Score: 1})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Title < hits[j].Title })
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *memSearchIndex) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]adapter.SearchDoc)
	return nil
}

var _ adapter.SearchIndex = (*memSearchIndex)(nil)

// ---- object storage ----

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
	deleted []string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (m *memStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return "https://cdn.example.com/" + key, nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

var _ adapter.ObjectStorage = (*memStorage)(nil)
