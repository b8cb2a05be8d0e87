package service_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository/memory"
	"github.com/naborsk/racequiz/internal/service"
)

func newAttemptFixture(t *testing.T) (service.AttemptService, *memory.AttemptRepository) {
	t.Helper()
	questions := memory.NewQuestionRepository()
	if err := questions.ReplaceAll([]model.Question{
		{ID: 1, OrgID: "q-abc", Number: 1, QuestionText: "Столица России?", CorrectAnswer: "A", IncorrectAnswer1: "B", IncorrectAnswer2: "C", IncorrectAnswer3: "D"},
	}); err != nil {
		t.Fatalf("seeding questions: %v", err)
	}
	attempts := memory.NewAttemptRepository()
	return service.NewAttemptService(questions, attempts), attempts
}

func TestRecordAnswerCorrectness(t *testing.T) {
	svc, attempts := newAttemptFixture(t)

	correct, err := svc.RecordAnswer("u1", 1, "A")
	if err != nil {
		t.Fatalf("record correct answer: %v", err)
	}
	if !correct.IsCorrect || correct.Score != 1 {
		t.Fatalf("expected is_correct=true score=1, got %+v", correct)
	}

	wrong, err := svc.RecordAnswer("u2", 1, "B")
	if err != nil {
		t.Fatalf("record wrong answer: %v", err)
	}
	if wrong.IsCorrect || wrong.Score != 0 {
		t.Fatalf("expected is_correct=false score=0, got %+v", wrong)
	}

	stored, _ := attempts.FindAll()
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored attempts, got %d", len(stored))
	}
}

func TestRecordAnswerAtMostOnce(t *testing.T) {
	svc, attempts := newAttemptFixture(t)

	if _, err := svc.RecordAnswer("u1", 1, "B"); err != nil {
		t.Fatalf("first answer failed: %v", err)
	}
	if _, err := svc.RecordAnswer("u1", 1, "A"); !errors.Is(err, domain.ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}

	stored, _ := attempts.FindAll()
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored attempt, got %d", len(stored))
	}
	// The first accepted answer wins; the later, correct one must not
	// overwrite it.
	if stored[0].Answer != "B" || stored[0].Score != 0 {
		t.Fatalf("stored attempt changed after duplicate: %+v", stored[0])
	}
}

func TestRecordAnswerConcurrentDuplicates(t *testing.T) {
	svc, attempts := newAttemptFixture(t)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordAnswer("u1", 1, "A")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var accepted, rejected int
	for err := range errs {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, domain.ErrAlreadyAnswered):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if accepted != 1 || rejected != workers-1 {
		t.Fatalf("expected exactly 1 accepted call, got accepted=%d rejected=%d", accepted, rejected)
	}

	stored, _ := attempts.FindAll()
	if len(stored) != 1 {
		t.Fatalf("expected exactly 1 stored attempt, got %d", len(stored))
	}
}

func TestRecordAnswerQuestionNotFound(t *testing.T) {
	svc, _ := newAttemptFixture(t)

	if _, err := svc.RecordAnswer("u1", 99, "A"); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}
