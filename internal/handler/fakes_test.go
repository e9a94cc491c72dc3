package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/Padala-Srishanth/placements/pkg/model"
)

// In-memory stores mirroring the repository semantics closely enough to
// exercise the handlers: prefix filters, pagination windows, not-found
// sentinels, idempotent delete.

type fakePlacementStore struct {
	items []model.Placement
	err   error
}

func (s *fakePlacementStore) List(_ context.Context, f model.PlacementFilter, limit, offset int) ([]model.Placement, error) {
	if s.err != nil {
		return nil, s.err
	}
	matched := make([]model.Placement, 0)
	for _, p := range s.items {
		if f.Company != "" && !strings.HasPrefix(p.CompanyName, f.Company) {
			continue
		}
		if f.Role != "" && !strings.HasPrefix(p.Role, f.Role) {
			continue
		}
		if f.Difficulty != "" && string(p.Difficulty) != f.Difficulty {
			continue
		}
		if f.Year != 0 && p.BatchYear != f.Year {
			continue
		}
		matched = append(matched, p)
	}
	if offset >= len(matched) {
		return []model.Placement{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *fakePlacementStore) Get(_ context.Context, id string) (*model.Placement, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *fakePlacementStore) ListAll(_ context.Context) ([]model.Placement, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *fakePlacementStore) Create(_ context.Context, p *model.Placement) error {
	if s.err != nil {
		return s.err
	}
	p.ID = fmt.Sprintf("pl-%d", len(s.items)+1)
	s.items = append(s.items, *p)
	return nil
}

func (s *fakePlacementStore) Update(_ context.Context, p *model.Placement) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = *p
			return nil
		}
	}
	return model.ErrNotFound
}

func (s *fakePlacementStore) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeEducationStore struct {
	items []model.HigherEducation
	err   error
}

func (s *fakeEducationStore) List(_ context.Context, f model.HigherEducationFilter, limit, offset int) ([]model.HigherEducation, error) {
	if s.err != nil {
		return nil, s.err
	}
	matched := make([]model.HigherEducation, 0)
	for _, e := range s.items {
		if f.Country != "" && !strings.HasPrefix(e.Country, f.Country) {
			continue
		}
		if f.University != "" && !strings.HasPrefix(e.UniversityName, f.University) {
			continue
		}
		if f.Course != "" && !strings.HasPrefix(e.Course, f.Course) {
			continue
		}
		if f.Year != 0 && e.YearOfAdmission != f.Year {
			continue
		}
		matched = append(matched, e)
	}
	if offset >= len(matched) {
		return []model.HigherEducation{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *fakeEducationStore) Get(_ context.Context, id string) (*model.HigherEducation, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			e := s.items[i]
			return &e, nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *fakeEducationStore) ListAll(_ context.Context) ([]model.HigherEducation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *fakeEducationStore) Create(_ context.Context, e *model.HigherEducation) error {
	if s.err != nil {
		return s.err
	}
	e.ID = fmt.Sprintf("he-%d", len(s.items)+1)
	s.items = append(s.items, *e)
	return nil
}

func (s *fakeEducationStore) Update(_ context.Context, e *model.HigherEducation) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.items {
		if s.items[i].ID == e.ID {
			s.items[i] = *e
			return nil
		}
	}
	return model.ErrNotFound
}

func (s *fakeEducationStore) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}
