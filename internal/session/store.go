package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"go-internmatch-portal/internal/api"
	"go-internmatch-portal/internal/models"
)

// ErrNotAuthenticated is returned by operations that require a signed-in
// session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the in-memory plus durably-persisted record of who is signed in
// and what we know about them. UserID is present exactly when the session is
// authenticated.
type Session struct {
	UserID string `json:"user_id"`
	models.Profile
}

// Store is the single source of truth for the signed-in user. It is created
// empty, brought up with Initialize, and mutated only through its own
// operations. Interactive failures both return to the caller and latch into
// the observable error.
type Store struct {
	client *api.Client
	files  *FileStore

	mu      sync.Mutex
	user    *Session
	loading bool
	lastErr error
}

func New(client *api.Client, files *FileStore) *Store {
	return &Store{
		client: client,
		files:  files,
	}
}

// Initialize restores the durable session, if any, and refreshes it against
// the remote system (remote wins on conflict). It never fails: a stale or
// unreadable session degrades to signed-out, and a remote lookup failure
// clears the durable entry. There is no interactive caller at startup, so
// problems are only logged.
func (s *Store) Initialize(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	cached, err := s.files.Load()
	if err != nil {
		log.Printf("⚠️ Could not restore session: %v", err)
		return
	}
	if cached == nil || cached.UserID == "" {
		return
	}

	current, err := s.client.GetUser(ctx, cached.UserID)
	if err != nil {
		//user deleted remotely or network down; drop the stale session
		log.Printf("⚠️ Cached session %s no longer resolves: %v", cached.UserID, err)
		if err := s.files.Clear(); err != nil {
			log.Printf("⚠️ Failed to clear stale session: %v", err)
		}
		return
	}

	merged, err := cached.Profile.Merge(current.Profile)
	if err != nil {
		log.Printf("⚠️ Could not merge remote profile: %v", err)
		return
	}

	sess := &Session{UserID: cached.UserID, Profile: merged}
	sess.Normalize()
	s.commit(sess)
	log.Printf("✅ Restored session for %s", sess.UserID)
}

// Login exchanges an email for the full remote record and signs it in. On
// failure any existing session is left untouched.
func (s *Store) Login(ctx context.Context, email string) (*Session, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	rec, err := s.client.Login(ctx, email)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	sess := &Session{UserID: rec.Identifier(), Profile: rec.Profile}
	sess.Normalize()
	s.persist(sess)
	s.commit(sess)
	return sess, nil
}

// Register creates the account, then fetches the canonical record in a second
// round trip: the creation response only carries the identifier.
func (s *Store) Register(ctx context.Context, draft models.Profile) (*Session, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	userID, err := s.client.Register(ctx, draft)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	rec, err := s.client.GetUser(ctx, userID)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	sess := &Session{UserID: userID, Profile: rec.Profile}
	sess.Normalize()
	s.persist(sess)
	s.commit(sess)
	return sess, nil
}

// UpdateProfile pushes the draft to the remote system and, on success,
// overlays it onto the in-memory session without re-fetching. The optimistic
// merge saves a round trip; the next Initialize reconciles any server-side
// transforms.
func (s *Store) UpdateProfile(ctx context.Context, draft models.Profile) (*Session, error) {
	s.mu.Lock()
	current := s.user
	s.mu.Unlock()
	if current == nil {
		s.fail(ErrNotAuthenticated)
		return nil, ErrNotAuthenticated
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.client.UpdateUser(ctx, current.UserID, draft); err != nil {
		s.fail(err)
		return nil, err
	}

	merged, err := current.Profile.Merge(draft)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	sess := &Session{UserID: current.UserID, Profile: merged}
	sess.Normalize()
	s.persist(sess)
	s.commit(sess)
	return sess, nil
}

// Logout clears the in-memory session, the durable entry and any latched
// error. It never fails and makes no remote call.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.lastErr = nil
	s.mu.Unlock()

	if err := s.files.Clear(); err != nil {
		log.Printf("⚠️ Failed to clear session file: %v", err)
	}
}

// User returns the current session, or nil when signed out.
func (s *Store) User() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// Loading reports whether a store operation is in flight; call sites use it
// to gate duplicate submission.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last interactive failure, cleared on logout and on the
// start of each operation.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	if v {
		s.lastErr = nil
	}
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

func (s *Store) commit(sess *Session) {
	s.mu.Lock()
	s.user = sess
	s.mu.Unlock()
}

// persist writes the session durably; persistence problems are logged, not
// fatal, the in-memory session stays usable either way.
func (s *Store) persist(sess *Session) {
	if err := s.files.Save(sess); err != nil {
		log.Printf("⚠️ Failed to persist session: %v", err)
	}
}
