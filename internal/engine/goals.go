package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"twelveweeks/internal/storage"
)

// AddGoal creates a goal with a fresh id. The title is required; the
// description is optional.
func (s *Service) AddGoal(title string, description string) (storage.Goal, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return storage.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.store.LoadGoals()
	if err != nil {
		return storage.Goal{}, err
	}
	goal := storage.Goal{
		ID:          uuid.NewString(),
		Title:       t,
		Description: strings.TrimSpace(description),
	}
	goals = append(goals, goal)
	if err := s.store.SaveGoals(goals); err != nil {
		return storage.Goal{}, err
	}
	return goal, nil
}

func (s *Service) ListGoals() ([]storage.Goal, error) {
	return s.store.LoadGoals()
}

// UpdateGoal replaces a goal's title and description by id.
func (s *Service) UpdateGoal(id string, title string, description string) (storage.Goal, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return storage.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.store.LoadGoals()
	if err != nil {
		return storage.Goal{}, err
	}
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].Title = t
		goals[i].Description = strings.TrimSpace(description)
		if err := s.store.SaveGoals(goals); err != nil {
			return storage.Goal{}, err
		}
		return goals[i], nil
	}
	return storage.Goal{}, fmt.Errorf("goal %s not found", id)
}

// DeleteGoal removes a goal by id. Confirmation is the caller's job.
func (s *Service) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.store.LoadGoals()
	if err != nil {
		return err
	}
	kept := goals[:0]
	found := false
	for _, goal := range goals {
		if goal.ID == id {
			found = true
			continue
		}
		kept = append(kept, goal)
	}
	if !found {
		return fmt.Errorf("goal %s not found", id)
	}
	return s.store.SaveGoals(kept)
}
