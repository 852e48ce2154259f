package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
)

const holidayDateLayout = "2006-01-02"

// holidayService implements the HolidayService interface with a small
// in-memory cache; holidays are reference data that changes at most a few
// times a year, so readers are served from the cache and the scheduler
// refreshes it daily.
type holidayService struct {
	repo db.HolidayRepository

	mu     sync.RWMutex
	cache  []*models.Holiday
	loaded bool
}

// NewHolidayService creates a new HolidayService instance.
func NewHolidayService(repo db.HolidayRepository) HolidayService {
	return &holidayService{repo: repo}
}

// Holidays returns all holidays sorted ascending by date. The first call
// populates the cache; subsequent calls serve from it until Refresh runs.
func (s *holidayService) Holidays(ctx context.Context) ([]*models.Holiday, error) {
	s.mu.RLock()
	if s.loaded {
		cached := make([]*models.Holiday, len(s.cache))
		copy(cached, s.cache)
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	cached := make([]*models.Holiday, len(s.cache))
	copy(cached, s.cache)
	return cached, nil
}

// Refresh reloads the cache from the repository and re-sorts it.
func (s *holidayService) Refresh(ctx context.Context) error {
	holidays, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh holidays: %w", err)
	}
	SortHolidays(holidays)

	s.mu.Lock()
	s.cache = holidays
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// SortHolidays orders holidays ascending by parsed date. An unparseable
// date sorts as the earliest possible value, so malformed entries surface at
// the top of the schedule instead of disappearing.
func SortHolidays(holidays []*models.Holiday) {
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidayTime(holidays[i].Date).Before(holidayTime(holidays[j].Date))
	})
}

func holidayTime(date string) time.Time {
	t, err := time.Parse(holidayDateLayout, date)
	if err != nil {
		return time.Time{}
	}
	return t
}
