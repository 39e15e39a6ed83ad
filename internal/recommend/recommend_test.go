package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-internmatch-portal/internal/api"
	"go-internmatch-portal/internal/models"
	"go-internmatch-portal/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTextFoldsAccentsAndCase(t *testing.T) {
	assert.Equal(t, "can tho", normalizeText("Cần Thơ"))
	assert.Equal(t, "remote", normalizeText("  REMOTE "))
}

func TestPreferenceBonus(t *testing.T) {
	profile := models.Profile{
		WorkLocation:    models.WorkRemote,
		JobType:         models.JobInternship,
		Location:        "Hồ Chí Minh",
		TechnicalSkills: []string{"Go", "SQL", "Docker", "K8s"},
	}

	tests := []struct {
		name     string
		rec      models.Recommendation
		expected float64
	}{
		{
			name: "full preference match",
			rec: models.Recommendation{
				WorkLocation: "Remote",
				JobType:      "internship",
				Location:     "Ho Chi Minh City",
				Skills:       []string{"go", "sql", "docker", "k8s"},
			},
			expected: 2 + 1 + 1 + 3, //skill overlap capped at 3
		},
		{
			name:     "no overlap",
			rec:      models.Recommendation{WorkLocation: "onsite", JobType: "full-time"},
			expected: 0,
		},
		{
			name:     "skills only",
			rec:      models.Recommendation{Skills: []string{"GO", "Rust"}},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, preferenceBonus(profile, tt.rec))
		})
	}
}

func TestFetchForRanksByAdjustedMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommendations", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"recommendations": []map[string]any{
				{"internship_id": "i1", "title": "Data Intern", "match": 80.0},
				{"internship_id": "i2", "title": "Go Intern", "match": 79.0, "workLocation": "remote", "jobType": "internship"},
			},
		})
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL), NewSeenCache(t.TempDir()))
	sess := &session.Session{
		UserID:  "u1",
		Profile: models.Profile{WorkLocation: models.WorkRemote, JobType: models.JobInternship},
	}

	recs, err := svc.FetchFor(context.Background(), sess, 10)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	//i2 gains +3 preference bonus and overtakes i1
	assert.Equal(t, "i2", recs[0].InternshipID)
	assert.Equal(t, 82.0, recs[0].Match)
	assert.Equal(t, 80.0, recs[1].Match)
}

func TestUnseenAndMarkSeen(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, NewSeenCache(dir))
	recs := []models.Recommendation{
		{InternshipID: "i1"},
		{InternshipID: "i2"},
	}

	assert.Len(t, svc.Unseen(recs), 2)

	svc.MarkSeen(recs[:1])
	fresh := svc.Unseen(recs)
	require.Len(t, fresh, 1)
	assert.Equal(t, "i2", fresh[0].InternshipID)

	//the cache is durable across instances
	reloaded := NewSeenCache(dir)
	assert.True(t, reloaded.IsSeen("i1"))
	assert.False(t, reloaded.IsSeen("i2"))
}

func TestApplyMarksInternshipSeen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apply", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"application_id": "a1"})
	}))
	defer srv.Close()

	cache := NewSeenCache(t.TempDir())
	svc := NewService(api.NewClient(srv.URL), cache)
	sess := &session.Session{UserID: "u1"}

	appID, err := svc.Apply(context.Background(), sess, "i7")

	require.NoError(t, err)
	assert.Equal(t, "a1", appID)
	assert.True(t, cache.IsSeen("i7"))
}
