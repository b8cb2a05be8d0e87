package service_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository/memory"
	"github.com/naborsk/racequiz/internal/service"
)

func newQuestionFixture(t *testing.T) (service.QuestionService, *memory.AttemptRepository) {
	t.Helper()
	users := memory.NewUserRepository(
		model.User{ID: "u1", Name: "12"},
		model.User{ID: "u2", Name: model.NoNumberName},
	)
	questions := memory.NewQuestionRepository()
	if err := questions.ReplaceAll([]model.Question{
		{ID: 1, OrgID: "q-abc", Number: 7, QuestionText: "Столица России?", CorrectAnswer: "Москва", IncorrectAnswer1: "Казань", IncorrectAnswer2: "Тверь"},
	}); err != nil {
		t.Fatalf("seeding questions: %v", err)
	}
	attempts := memory.NewAttemptRepository()
	return service.NewQuestionService(questions, attempts, users), attempts
}

func TestGetForUserShufflesAllOptions(t *testing.T) {
	svc, _ := newQuestionFixture(t)

	view, err := svc.GetForUser("u1", "q-abc")
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if view.Number != 7 || view.Text != "Столица России?" {
		t.Fatalf("unexpected view: %+v", view)
	}
	// Blank incorrect answers are dropped; the remaining options survive the
	// shuffle intact.
	got := append([]string(nil), view.Options...)
	sort.Strings(got)
	want := []string{"Казань", "Москва", "Тверь"}
	if len(got) != len(want) {
		t.Fatalf("expected %d options, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected options %v, got %v", want, got)
		}
	}
}

func TestGetForUserAlreadyAnswered(t *testing.T) {
	svc, attempts := newQuestionFixture(t)

	a := model.Attempt{UserID: "u1", QuestionID: 1, Answer: "Казань"}
	if err := attempts.Create(&a); err != nil {
		t.Fatalf("seeding attempt: %v", err)
	}

	if _, err := svc.GetForUser("u1", "q-abc"); !errors.Is(err, domain.ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestGetForUserRequiresStartNumber(t *testing.T) {
	svc, _ := newQuestionFixture(t)

	if _, err := svc.GetForUser("u2", "q-abc"); !errors.Is(err, domain.ErrNumberRequired) {
		t.Fatalf("expected ErrNumberRequired, got %v", err)
	}
}

func TestGetForUserUnknownQuestion(t *testing.T) {
	svc, _ := newQuestionFixture(t)

	if _, err := svc.GetForUser("u1", "missing"); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}
