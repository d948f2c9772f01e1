package selection

import (
	"context"
	"sync"
	"time"
)

// Store keeps one Selection per session between requests. Sessions never
// share an entry.
type Store interface {
	Load(ctx context.Context, sessionID string) (Selection, error)
	Save(ctx context.Context, sessionID string, s Selection) error
	Close()
}

type memoryEntry struct {
	selection Selection
	touched   time.Time
}

// MemoryStore is an in-process Store. Entries idle for longer than the
// retention are dropped by a background sweep.
type MemoryStore struct {
	mu            sync.RWMutex
	sessions      map[string]memoryEntry
	retention     time.Duration
	now           func() time.Time
	cleanupTicker *time.Ticker
	stopChan      chan struct{}
	closeOnce     sync.Once
}

func NewMemoryStore(retention time.Duration) *MemoryStore {
	m := &MemoryStore{
		sessions:  make(map[string]memoryEntry),
		retention: retention,
		now:       time.Now,
		stopChan:  make(chan struct{}),
	}

	interval := time.Hour
	if retention > 0 && retention < interval {
		interval = retention
	}
	m.cleanupTicker = time.NewTicker(interval)
	go m.cleanup()

	return m
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (Selection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.sessions[sessionID]
	if !ok || m.expired(e) {
		return Unselected, nil
	}
	return e.selection, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, s Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !s.Active() {
		delete(m.sessions, sessionID)
		return nil
	}
	m.sessions[sessionID] = memoryEntry{selection: s, touched: m.now()}
	return nil
}

// Len returns the number of sessions holding a selection.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) expired(e memoryEntry) bool {
	return m.retention > 0 && m.now().Sub(e.touched) > m.retention
}

func (m *MemoryStore) cleanup() {
	for {
		select {
		case <-m.cleanupTicker.C:
			m.performCleanup()
		case <-m.stopChan:
			return
		}
	}
}

func (m *MemoryStore) performCleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.sessions {
		if m.expired(e) {
			delete(m.sessions, id)
		}
	}
}

func (m *MemoryStore) Close() {
	m.closeOnce.Do(func() {
		m.cleanupTicker.Stop()
		close(m.stopChan)
	})
}
