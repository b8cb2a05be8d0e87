// Package memory provides in-memory implementations of the repository
// interfaces. They back the service tests and mirror the storage guarantees
// the Postgres repositories rely on: the unique attempt index and the
// all-or-nothing bulk replace.
package memory

import (
	"sort"
	"sync"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
)

type QuestionRepository struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]model.Question

	// ReplaceErr, when set, makes ReplaceAll fail without touching the
	// stored set, simulating a transaction abort.
	ReplaceErr error
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{nextID: 1, byID: make(map[uint]model.Question)}
}

var _ repository.QuestionRepository = (*QuestionRepository)(nil)

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &q, nil
}

func (r *QuestionRepository) FindByOrgID(orgID string) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.byID {
		if q.OrgID == orgID {
			q := q
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *QuestionRepository) ReplaceAll(questions []model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ReplaceErr != nil {
		return r.ReplaceErr
	}
	r.byID = make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		if q.ID == 0 {
			q.ID = r.nextID
			r.nextID++
		}
		r.byID[q.ID] = q
	}
	return nil
}

// All returns the stored questions ordered by id, for test assertions.
func (r *QuestionRepository) All() []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Question, 0, len(r.byID))
	for _, q := range r.byID {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
