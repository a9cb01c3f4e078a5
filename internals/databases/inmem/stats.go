package inmem

import (
	"context"
	"sort"

	"skillup_backend/internals/constants"
	classmodel "skillup_backend/internals/features/classes/model"
	"skillup_backend/internals/features/home/stats/dto"
	"skillup_backend/internals/features/home/stats/repository"
)

type statsStore struct {
	db *DB
}

func NewStatsStore(db *DB) repository.StatsStore {
	return &statsStore{db: db}
}

func (s *statsStore) TopTeachers(_ context.Context, limit int64) ([]dto.TopTeacherDTO, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	totals := map[string]int64{}
	order := []string{}
	for _, cl := range s.db.Classes {
		if _, ok := totals[cl.Email]; !ok {
			order = append(order, cl.Email)
		}
		totals[cl.Email] += cl.Enroll
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	result := []dto.TopTeacherDTO{}
	for _, email := range order {
		if limit > 0 && int64(len(result)) >= limit {
			break
		}
		t := dto.TopTeacherDTO{Email: email, TotalEnrollment: totals[email]}
		for _, teacher := range s.db.Teachers {
			if teacher.Email == email {
				t.Name = teacher.Name
				t.Image = teacher.Image
				break
			}
		}
		result = append(result, t)
	}
	return result, nil
}

func (s *statsStore) FeaturedCourses(_ context.Context) ([]classmodel.ClassModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	approved := []classmodel.ClassModel{}
	for _, cl := range s.db.Classes {
		if cl.Status == constants.StatusApprove {
			approved = append(approved, cl)
		}
	}

	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].Enroll > approved[j].Enroll
	})

	if len(approved) > repository.FeaturedLimit {
		approved = approved[:repository.FeaturedLimit]
	}
	return approved, nil
}

func (s *statsStore) SiteStats(_ context.Context) (*dto.SiteStatsDTO, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stats := &dto.SiteStatsDTO{TotalUsers: int64(len(s.db.Users))}
	for _, cl := range s.db.Classes {
		if cl.Status == constants.StatusApprove {
			stats.TotalClasses++
		}
		stats.TotalEnrollment += cl.Enroll
	}
	return stats, nil
}
