package session

import (
	"context"
	"sync"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

type memoryRecord struct {
	session models.Session
	prefs   *models.Preferences
}

// MemoryStore keeps records in process memory. Used for single-replica deployments and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*memoryRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*memoryRecord)}
}

func (m *MemoryStore) Get(_ context.Context, browserID string) (models.Session, error) {
	if err := checkID(browserID); err != nil {
		return models.Session{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[browserID]; ok {
		return rec.session, nil
	}
	return models.Session{}, nil
}

func (m *MemoryStore) Set(_ context.Context, browserID string, s models.Session) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(browserID).session = s
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, browserID string) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[browserID]; ok {
		rec.session = models.Session{}
	}
	return nil
}

func (m *MemoryStore) Preferences(_ context.Context, browserID string) (models.Preferences, error) {
	if err := checkID(browserID); err != nil {
		return models.Preferences{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[browserID]; ok && rec.prefs != nil {
		return *rec.prefs, nil
	}
	return models.DefaultPreferences(), nil
}

func (m *MemoryStore) SetPreferences(_ context.Context, browserID string, p models.Preferences) error {
	if err := checkID(browserID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(browserID).prefs = &p
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// record must be called with the write lock held.
func (m *MemoryStore) record(browserID string) *memoryRecord {
	rec, ok := m.records[browserID]
	if !ok {
		rec = &memoryRecord{}
		m.records[browserID] = rec
	}
	return rec
}
