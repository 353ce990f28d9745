package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds live sessions in memory only. Sessions are never persisted;
// a session idle past the TTL is evicted by the janitor, the server-side
// analogue of the page being closed.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	ttl             time.Duration
	cleanupInterval time.Duration

	wg       sync.WaitGroup
	stopChan chan struct{}
}

func NewStore(ttl, cleanupInterval time.Duration) *Store {
	return &Store{
		sessions:        make(map[uuid.UUID]*Session),
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		stopChan:        make(chan struct{}),
	}
}

// Create registers a fresh, empty session.
func (st *Store) Create() *Session {
	sess := newSession()

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	return sess
}

func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	sess, ok := st.sessions[id]
	return sess, ok
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Start launches the eviction janitor.
func (st *Store) Start() {
	st.wg.Add(1)
	go st.runJanitor()
}

// Stop halts the janitor and waits for it to exit.
func (st *Store) Stop() {
	close(st.stopChan)
	st.wg.Wait()
}

func (st *Store) runJanitor() {
	defer st.wg.Done()

	ticker := time.NewTicker(st.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stopChan:
			return
		case <-ticker.C:
			if evicted := st.evictExpired(); evicted > 0 {
				log.Printf("🧹 Evicted %d expired session(s)\n", evicted)
			}
		}
	}
}

func (st *Store) evictExpired() int {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	for id, sess := range st.sessions {
		if sess.idleSince(cutoff) {
			delete(st.sessions, id)
			evicted++
		}
	}

	return evicted
}
