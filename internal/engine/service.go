package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"twelveweeks/internal/storage"
)

// Service owns the store and performs every read-modify-write as one
// locked operation, so collection updates stay atomic even if commands
// ever run from multiple goroutines.
type Service struct {
	mu    sync.Mutex
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Store() storage.Store { return s.store }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}
	return nil
}

func (s *Service) BaseMonday() (string, error) {
	return s.store.BaseMonday()
}

// SetBaseMonday stores the week-1 epoch. A non-Monday date is snapped to
// the nearest Monday; the returned date is what was actually stored, with
// snapped reporting whether an adjustment happened.
func (s *Service) SetBaseMonday(date string) (stored string, snapped bool, err error) {
	if err := validateDate(date); err != nil {
		return "", false, err
	}
	monday, err := NearestMonday(date)
	if err != nil {
		return "", false, err
	}
	if err := s.store.SetBaseMonday(monday); err != nil {
		return "", false, err
	}
	return monday, monday != date, nil
}

// ClearAll wipes every collection and the epoch. Callers confirm first.
func (s *Service) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear()
}
