package memory

import (
	"sync"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
)

type attemptKey struct {
	userID     string
	questionID uint
}

type AttemptRepository struct {
	mu       sync.Mutex
	nextID   uint
	attempts []model.Attempt
	index    map[attemptKey]struct{}

	// Refs resolve User/Question associations in FindAllWithRefs the way
	// the Postgres repository preloads them.
	Users     *UserRepository
	Questions *QuestionRepository
}

func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{nextID: 1, index: make(map[attemptKey]struct{})}
}

var _ repository.AttemptRepository = (*AttemptRepository)(nil)

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := attemptKey{attempt.UserID, attempt.QuestionID}
	if _, dup := r.index[key]; dup {
		return domain.ErrAlreadyAnswered
	}
	attempt.ID = r.nextID
	r.nextID++
	r.index[key] = struct{}{}
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *AttemptRepository) ExistsByUserAndQuestion(userID string, questionID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.index[attemptKey{userID, questionID}]
	return ok, nil
}

func (r *AttemptRepository) FindAll() ([]model.Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Attempt, len(r.attempts))
	copy(out, r.attempts)
	return out, nil
}

func (r *AttemptRepository) FindAllWithRefs() ([]model.Attempt, error) {
	attempts, _ := r.FindAll()
	for i := range attempts {
		if r.Users != nil {
			if u, err := r.Users.FindByID(attempts[i].UserID); err == nil {
				attempts[i].User = *u
			}
		}
		if r.Questions != nil {
			if q, err := r.Questions.FindByID(attempts[i].QuestionID); err == nil {
				attempts[i].Question = *q
			}
		}
	}
	return attempts, nil
}
