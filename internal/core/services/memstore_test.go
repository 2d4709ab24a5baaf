package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/factory_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/factory_ops_app/internal/utils/reporting"
)

// memStore is an in-memory stand-in for the Postgres repositories with the
// same observable semantics.
type memStore struct {
	mu          sync.Mutex
	identities  map[string]domain.Identity
	credentials map[string]domain.Credential // keyed by email
	sessions    map[string]domain.SessionRecord
	factories   []domain.Factory
	workers     []domain.Worker
	logs        []domain.DailyLog
}

func newMemStore() *memStore {
	return &memStore{
		identities:  map[string]domain.Identity{},
		credentials: map[string]domain.Credential{},
		sessions:    map[string]domain.SessionRecord{},
	}
}

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IdentityRepo: m,
		SessionRepo:  m,
		FactoryRepo:  m,
		WorkerRepo:   m,
		DailyLogRepo: m,
	}
}

var (
	_ portsrepo.IdentityRepositoryFacade = (*memStore)(nil)
	_ portsrepo.SessionRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.FactoryRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.WorkerRepositoryFacade   = (*memStore)(nil)
	_ portsrepo.DailyLogRepositoryFacade = (*memStore)(nil)
)

func (m *memStore) FindIdentityByID(_ context.Context, id string) (*domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.identities[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("identity", id)
	}
	return &i, nil
}

func (m *memStore) FindIdentityByEmail(_ context.Context, email string) (*domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, i := range m.identities {
		if i.Email == email {
			return &i, nil
		}
	}
	return nil, apperrors.NewNotFoundError("identity", email)
}

func (m *memStore) ListIdentitiesByStanding(_ context.Context, role domain.Role, status domain.ApprovalStatus) ([]domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Identity{}
	for _, i := range m.identities {
		if i.Standing.Role() == role && i.Standing.Status() == status {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}

func (m *memStore) RegisterIdentity(_ context.Context, identity domain.Identity, credential domain.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.credentials[credential.Email]; taken {
		return apperrors.NewAuthError(apperrors.ErrEmailInUse, "email is already registered")
	}
	m.identities[identity.IdentityID] = identity
	m.credentials[credential.Email] = credential
	return nil
}

func (m *memStore) UpsertOwner(_ context.Context, identity domain.Identity, credential domain.Credential) (*domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.identities {
		if existing.Email == identity.Email {
			existing.Standing = domain.OwnerStanding{}
			m.identities[id] = existing
			credential.IdentityID = id
			m.credentials[credential.Email] = credential
			return &existing, nil
		}
	}
	m.identities[identity.IdentityID] = identity
	m.credentials[credential.Email] = credential
	return &identity, nil
}

func (m *memStore) ApproveManager(_ context.Context, identityID string, standing domain.ApprovedManagerStanding) (*domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.identities[identityID]
	if !ok || i.IsOwner() {
		return nil, apperrors.NewNotFoundError("manager", identityID)
	}
	i.Standing = standing
	m.identities[identityID] = i
	return &i, nil
}

func (m *memStore) FindCredentialByEmail(_ context.Context, email string) (*domain.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.credentials[email]
	if !ok {
		return nil, apperrors.NewNotFoundError("credential", email)
	}
	return &c, nil
}

func (m *memStore) SaveSession(_ context.Context, s domain.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID] = s
	return nil
}

func (m *memStore) FindSessionByID(_ context.Context, id string) (*domain.SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("session", id)
	}
	return &s, nil
}

func (m *memStore) RevokeSession(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.RevokedAt != nil {
		return nil
	}
	s.RevokedAt = &at
	m.sessions[id] = s
	return nil
}

func (m *memStore) liveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.sessions {
		if s.RevokedAt == nil {
			n++
		}
	}
	return n
}

func (m *memStore) FindFactoryByID(_ context.Context, id string) (*domain.Factory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.factories {
		if f.FactoryID == id {
			return &f, nil
		}
	}
	return nil, apperrors.NewNotFoundError("factory", id)
}

func (m *memStore) ListFactories(_ context.Context) ([]domain.Factory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Factory{}, m.factories...), nil
}

func (m *memStore) CountFactories(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.factories), nil
}

func (m *memStore) SaveFactory(_ context.Context, f domain.Factory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factories = append(m.factories, f)
	return nil
}

func (m *memStore) FindWorkerByID(_ context.Context, id string) (*domain.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.workers {
		if w.WorkerID == id {
			return &w, nil
		}
	}
	return nil, apperrors.NewNotFoundError("worker", id)
}

func (m *memStore) ListWorkers(_ context.Context, factoryID string) ([]domain.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Worker{}
	for _, w := range m.workers {
		if factoryID == "" || w.FactoryID == factoryID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memStore) SaveWorker(_ context.Context, w domain.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers = append(m.workers, w)
	return nil
}

func (m *memStore) ListDailyLogs(_ context.Context, q domain.LogQuery) ([]domain.DailyLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.DailyLog{}
	r := domain.DateRange{From: q.From, To: q.To}
	for _, l := range m.logs {
		if q.FactoryID != "" && l.FactoryID != q.FactoryID {
			continue
		}
		if reporting.Contains(r, l.Date) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Date != out[b].Date {
			return out[a].Date < out[b].Date
		}
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out, nil
}

func (m *memStore) SaveDailyLog(_ context.Context, l domain.DailyLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, l)
	return nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Name
	}
	return out
}

// memBlobs is a BlobStore that keeps uploads in memory.
type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (b *memBlobs) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.objects == nil {
		b.objects = map[string][]byte{}
	}
	b.objects[key] = data
	return "https://blobs.test/" + key, nil
}
