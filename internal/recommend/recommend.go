// Package recommend fetches scored internship recommendations for the
// signed-in user, re-ranks them against the local profile preferences and
// filters out internships that were already shown or applied to.
package recommend

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"go-internmatch-portal/internal/api"
	"go-internmatch-portal/internal/models"
	"go-internmatch-portal/internal/session"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Service struct {
	client *api.Client
	cache  *SeenCache
}

func NewService(client *api.Client, cache *SeenCache) *Service {
	return &Service{
		client: client,
		cache:  cache,
	}
}

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(strings.TrimSpace(result))
}

// FetchFor asks the remote system for recommendations and re-ranks them with
// a local preference bonus. The remote "match" percentage stays the base;
// the bonus only breaks ties in favor of explicit profile preferences.
func (s *Service) FetchFor(ctx context.Context, sess *session.Session, topN int) ([]models.Recommendation, error) {
	recs, err := s.client.GetRecommendations(ctx, sess.UserID, topN)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		recs[i].Match += preferenceBonus(sess.Profile, recs[i])
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Match > recs[j].Match
	})
	return recs, nil
}

// preferenceBonus scores how well one recommendation lines up with the
// profile's stated preferences. Comparisons are accent-folded and
// case-insensitive.
func preferenceBonus(p models.Profile, rec models.Recommendation) float64 {
	bonus := 0.0

	if p.WorkLocation != "" && normalizeText(string(p.WorkLocation)) == normalizeText(rec.WorkLocation) {
		bonus += 2
	}
	if p.JobType != "" && normalizeText(string(p.JobType)) == normalizeText(rec.JobType) {
		bonus += 1
	}
	if p.CompanySize != "" && normalizeText(string(p.CompanySize)) == normalizeText(rec.CompanySize) {
		bonus += 1
	}
	if p.Location != "" && rec.Location != "" &&
		strings.Contains(normalizeText(rec.Location), normalizeText(p.Location)) {
		bonus += 1
	}

	//skill overlap, capped so one strong axis can't drown the remote score
	mine := mapset.NewSet[string]()
	for _, skill := range p.TechnicalSkills {
		mine.Add(normalizeText(skill))
	}
	theirs := mapset.NewSet[string]()
	for _, skill := range rec.Skills {
		theirs.Add(normalizeText(skill))
	}
	overlap := mine.Intersect(theirs).Cardinality()
	if overlap > 3 {
		overlap = 3
	}
	bonus += float64(overlap)

	return bonus
}

// Unseen filters out recommendations already recorded in the seen cache.
func (s *Service) Unseen(recs []models.Recommendation) []models.Recommendation {
	var fresh []models.Recommendation
	for _, rec := range recs {
		if !s.cache.IsSeen(rec.InternshipID) {
			fresh = append(fresh, rec)
		}
	}
	return fresh
}

// MarkSeen records the recommendations so later runs skip them.
func (s *Service) MarkSeen(recs []models.Recommendation) {
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.InternshipID)
	}
	s.cache.Add(ids)
}

// Apply submits an application for the signed-in user and marks the
// internship seen so the notifier stops suggesting it.
func (s *Service) Apply(ctx context.Context, sess *session.Session, internshipID string) (string, error) {
	appID, err := s.client.ApplyForInternship(ctx, sess.UserID, internshipID)
	if err != nil {
		return "", err
	}
	s.cache.Add([]string{internshipID})
	return appID, nil
}
