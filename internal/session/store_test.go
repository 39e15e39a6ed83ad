package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-internmatch-portal/internal/api"
	"go-internmatch-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote is a minimal in-memory rendition of the remote system.
type fakeRemote struct {
	users       map[string]map[string]any
	getUserHits int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{users: map[string]map[string]any{}}
}

func (f *fakeRemote) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		for id, u := range f.users {
			if u["email"] == body["email"] {
				out := map[string]any{"_id": id}
				for k, v := range u {
					out[k] = v
				}
				json.NewEncoder(w).Encode(out)
				return
			}
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email"})
	})

	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		var draft map[string]any
		json.NewDecoder(r.Body).Decode(&draft)
		id := "u1"
		f.users[id] = draft
		json.NewEncoder(w).Encode(map[string]string{"user_id": id})
	})

	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.getUserHits++
		id := strings.TrimPrefix(r.URL.Path, "/users/")
		u, ok := f.users[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "User not found"})
			return
		}
		out := map[string]any{"_id": id}
		for k, v := range u {
			out[k] = v
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("PUT /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/users/")
		u, ok := f.users[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "User not found"})
			return
		}
		var draft map[string]any
		json.NewDecoder(r.Body).Decode(&draft)
		for k, v := range draft {
			u[k] = v
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	return mux
}

func newTestStore(t *testing.T, remote *fakeRemote) (*Store, string) {
	t.Helper()
	srv := httptest.NewServer(remote.handler())
	t.Cleanup(srv.Close)
	dir := t.TempDir()
	return New(api.NewClient(srv.URL), NewFileStore(dir)), dir
}

func sessionFileExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "session.json"))
	return err == nil
}

func TestLoginSuccess(t *testing.T) {
	remote := newFakeRemote()
	remote.users["u1"] = map[string]any{"email": "ann@example.com", "firstName": "Ann"}
	store, dir := newTestStore(t, remote)

	sess, err := store.Login(context.Background(), "ann@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "Ann", sess.FirstName)
	assert.True(t, store.IsAuthenticated())
	assert.NoError(t, store.Err())
	assert.True(t, sessionFileExists(dir), "session must be durably persisted")
}

func TestLoginFailureKeepsExistingSession(t *testing.T) {
	remote := newFakeRemote()
	remote.users["u1"] = map[string]any{"email": "ann@example.com", "firstName": "Ann"}
	store, _ := newTestStore(t, remote)

	_, err := store.Login(context.Background(), "ann@example.com")
	require.NoError(t, err)

	_, err = store.Login(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid email")
	assert.EqualError(t, store.Err(), "Invalid email")
	//the previous session is not discarded on failure
	require.NotNil(t, store.User())
	assert.Equal(t, "u1", store.User().UserID)
}

func TestRegisterFetchesCanonicalRecord(t *testing.T) {
	remote := newFakeRemote()
	store, _ := newTestStore(t, remote)

	draft := models.Profile{FirstName: "Ann", Email: "ann@example.com", TechnicalSkills: []string{"Go"}}
	sess, err := store.Register(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, 1, remote.getUserHits, "registration fetches the created record once")
	//round trip: fields accepted by the remote come back on the session
	assert.Equal(t, "Ann", sess.FirstName)
	assert.Equal(t, "ann@example.com", sess.Email)
	assert.Equal(t, []string{"Go"}, sess.TechnicalSkills)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	store, _ := newTestStore(t, newFakeRemote())

	_, err := store.UpdateProfile(context.Background(), models.Profile{FirstName: "Anna"})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, store.Err(), ErrNotAuthenticated)
}

func TestUpdateProfileMergesOptimistically(t *testing.T) {
	remote := newFakeRemote()
	remote.users["u1"] = map[string]any{"email": "ann@example.com", "firstName": "Ann"}
	store, _ := newTestStore(t, remote)

	_, err := store.Login(context.Background(), "ann@example.com")
	require.NoError(t, err)
	fetchesBefore := remote.getUserHits

	sess, err := store.UpdateProfile(context.Background(), models.Profile{FirstName: "Anna", LastName: "Lee"})

	require.NoError(t, err)
	assert.Equal(t, "Anna", sess.FirstName)
	assert.Equal(t, "Lee", sess.LastName)
	assert.Equal(t, "ann@example.com", sess.Email, "merged, not replaced wholesale")
	assert.Equal(t, fetchesBefore, remote.getUserHits, "no re-fetch after update")
}

func TestUpdateProfileIsIdempotent(t *testing.T) {
	remote := newFakeRemote()
	remote.users["u1"] = map[string]any{"email": "ann@example.com", "firstName": "Ann"}
	store, _ := newTestStore(t, remote)

	_, err := store.Login(context.Background(), "ann@example.com")
	require.NoError(t, err)

	draft := models.Profile{FirstName: "Anna", LastName: "Lee"}
	first, err := store.UpdateProfile(context.Background(), draft)
	require.NoError(t, err)
	second, err := store.UpdateProfile(context.Background(), draft)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateProfileCanUnsetPreferenceFlags(t *testing.T) {
	var putBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"_id": "u1", "email": "ann@example.com", "remoteWork": true, "willingToRelocate": true,
		})
	})
	mux.HandleFunc("PUT /users/u1", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	store := New(api.NewClient(srv.URL), NewFileStore(t.TempDir()))

	sess, err := store.Login(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.True(t, sess.RemoteWork)

	draft := sess.Profile.Clone()
	draft.RemoteWork = false
	updated, err := store.UpdateProfile(context.Background(), draft)

	require.NoError(t, err)
	flag, present := putBody["remoteWork"]
	require.True(t, present, "PUT body must carry the flag")
	assert.Equal(t, false, flag)
	assert.False(t, updated.RemoteWork, "merged session must reflect the unset flag")
	assert.True(t, updated.WillingToRelocate, "untouched flag survives")
}

func TestInitializeRestoresAndRemoteWins(t *testing.T) {
	remote := newFakeRemote()
	remote.users["u1"] = map[string]any{"email": "ann@example.com", "firstName": "Anna"}
	store, dir := newTestStore(t, remote)

	//seed a durable session with an outdated name and a locally cached phone
	cached := &Session{UserID: "u1", Profile: models.Profile{FirstName: "Ann", Phone: "123"}}
	require.NoError(t, NewFileStore(dir).Save(cached))

	store.Initialize(context.Background())

	require.True(t, store.IsAuthenticated())
	sess := store.User()
	assert.Equal(t, "Anna", sess.FirstName, "canonical record wins on conflict")
	assert.Equal(t, "123", sess.Phone, "fields the remote omits keep the cached value")
	assert.False(t, store.Loading())
}

func TestInitializeClearsStaleSession(t *testing.T) {
	remote := newFakeRemote() //no users: every lookup 404s
	store, dir := newTestStore(t, remote)

	cached := &Session{UserID: "u1", Profile: models.Profile{FirstName: "Ann"}}
	require.NoError(t, NewFileStore(dir).Save(cached))

	store.Initialize(context.Background())

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.NoError(t, store.Err(), "startup failures are never surfaced")
	assert.False(t, sessionFileExists(dir), "stale durable entry is cleared")
}

func TestLogoutThenInitializeStaysSignedOut(t *testing.T) {
	remote := newFakeRemote()
	remote.users["u1"] = map[string]any{"email": "ann@example.com", "firstName": "Ann"}
	store, dir := newTestStore(t, remote)

	_, err := store.Login(context.Background(), "ann@example.com")
	require.NoError(t, err)

	store.Logout()
	assert.Nil(t, store.User())
	assert.False(t, sessionFileExists(dir))

	store.Initialize(context.Background())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}

func TestSessionCollectionsNormalizedAfterLogin(t *testing.T) {
	remote := newFakeRemote()
	remote.users["u1"] = map[string]any{"email": "ann@example.com"}
	store, _ := newTestStore(t, remote)

	sess, err := store.Login(context.Background(), "ann@example.com")

	require.NoError(t, err)
	assert.Len(t, sess.Education, 1, "always one row to render")
	assert.Len(t, sess.WorkExperience, 1)
	assert.NotNil(t, sess.TechnicalSkills)
}
