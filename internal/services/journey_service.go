package services

import (
	"database/sql"
	"time"

	"bubblycrochet/internal/domain"
	"bubblycrochet/internal/repos"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const groupedCacheKey = "journey_resources_grouped"

// NewJourneyCache returns the cache instance the journey service expects:
// 10 minute TTL, swept every 2 minutes.
func NewJourneyCache() *gocache.Cache {
	return gocache.New(10*time.Minute, 2*time.Minute)
}

type JourneyService struct {
	Journey *repos.JourneyRepo
	Cache   *gocache.Cache
}

func NewJourneyService(journey *repos.JourneyRepo, c *gocache.Cache) *JourneyService {
	return &JourneyService{Journey: journey, Cache: c}
}

func (s *JourneyService) List(category string) ([]domain.JourneyResource, error) {
	return s.Journey.List(category)
}

func (s *JourneyService) Get(id string) (domain.JourneyResource, error) {
	j, err := s.Journey.Get(id)
	if err == sql.ErrNoRows {
		return domain.JourneyResource{}, ErrNotFound
	}
	return j, err
}

// Grouped returns resources bucketed by category, served from the TTL cache
// when warm. The second return reports a cache hit.
func (s *JourneyService) Grouped() (map[string][]domain.JourneyResource, bool, error) {
	if v, ok := s.Cache.Get(groupedCacheKey); ok {
		return v.(map[string][]domain.JourneyResource), true, nil
	}

	all, err := s.Journey.List("")
	if err != nil {
		return nil, false, err
	}
	grouped := make(map[string][]domain.JourneyResource, len(domain.JourneyCategories))
	for _, cat := range domain.JourneyCategories {
		grouped[cat] = []domain.JourneyResource{}
	}
	for _, r := range all {
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	s.Cache.SetDefault(groupedCacheKey, grouped)
	return grouped, false, nil
}

func (s *JourneyService) Create(j domain.JourneyResource) (domain.JourneyResource, error) {
	j.ID = uuid.NewString()
	if err := s.Journey.Create(&j); err != nil {
		return domain.JourneyResource{}, err
	}
	s.Cache.Delete(groupedCacheKey)
	return s.Journey.Get(j.ID)
}

func (s *JourneyService) Update(j domain.JourneyResource) (domain.JourneyResource, error) {
	ok, err := s.Journey.Update(&j)
	if err != nil {
		return domain.JourneyResource{}, err
	}
	if !ok {
		return domain.JourneyResource{}, ErrNotFound
	}
	s.Cache.Delete(groupedCacheKey)
	return s.Journey.Get(j.ID)
}

func (s *JourneyService) Delete(id string) error {
	ok, err := s.Journey.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	s.Cache.Delete(groupedCacheKey)
	return nil
}
