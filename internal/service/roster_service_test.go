package service_test

import (
	"fmt"
	"testing"

	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository/memory"
	"github.com/naborsk/racequiz/internal/service"
)

// newRosterRepo wires the attempt fake to user and question fakes so
// FindAllWithRefs resolves associations like the Postgres preloads do.
func newRosterRepo(t *testing.T, users []model.User, questions []model.Question, attempts []model.Attempt) *memory.AttemptRepository {
	t.Helper()
	userRepo := memory.NewUserRepository(users...)
	questionRepo := memory.NewQuestionRepository()
	if err := questionRepo.ReplaceAll(questions); err != nil {
		t.Fatalf("seeding questions: %v", err)
	}
	attemptRepo := memory.NewAttemptRepository()
	attemptRepo.Users = userRepo
	attemptRepo.Questions = questionRepo
	for _, a := range attempts {
		a := a
		if err := attemptRepo.Create(&a); err != nil {
			t.Fatalf("seeding attempts: %v", err)
		}
	}
	return attemptRepo
}

func TestListParticipantsSlotMapping(t *testing.T) {
	repo := newRosterRepo(t,
		[]model.User{{ID: "u1", Name: "12", PhoneNumber: "+7999"}},
		[]model.Question{
			{ID: 1, OrgID: "a", Number: 1, CorrectAnswer: "A"},
			{ID: 2, OrgID: "b", Number: 3, CorrectAnswer: "B"},
		},
		[]model.Attempt{
			{UserID: "u1", QuestionID: 1, Answer: "X", IsCorrect: false},
			{UserID: "u1", QuestionID: 2, Answer: "B", IsCorrect: true, Score: 1},
		},
	)
	svc := service.NewRosterService(repo, 5)

	resp, err := svc.ListParticipants(service.RosterQuery{})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(resp.Users) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp.Users))
	}
	row := resp.Users[0]
	if len(row.Questions) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(row.Questions))
	}
	// Display number 1 lands in slot 0, number 3 in slot 2.
	if row.Questions[0].Answer != "X" || row.Questions[0].Correct != 0 {
		t.Fatalf("unexpected slot 0: %+v", row.Questions[0])
	}
	if row.Questions[2].Answer != "B" || row.Questions[2].Correct != 1 {
		t.Fatalf("unexpected slot 2: %+v", row.Questions[2])
	}
	if row.Questions[1].Answer != "" || row.Questions[1].Correct != 0 {
		t.Fatalf("unanswered slot must stay zero: %+v", row.Questions[1])
	}
	if row.CorrectCount != 1 {
		t.Fatalf("expected correct_count 1, got %d", row.CorrectCount)
	}
}

func manyParticipants(t *testing.T, n int) *memory.AttemptRepository {
	t.Helper()
	users := make([]model.User, 0, n)
	attempts := make([]model.Attempt, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("u%03d", i)
		users = append(users, model.User{ID: id, Name: fmt.Sprintf("%03d", i)})
		attempts = append(attempts, model.Attempt{UserID: id, QuestionID: 1, Answer: "A", IsCorrect: true, Score: 1})
	}
	return newRosterRepo(t, users, []model.Question{{ID: 1, OrgID: "a", Number: 1, CorrectAnswer: "A"}}, attempts)
}

func TestListParticipantsPaginationClamps(t *testing.T) {
	svc := service.NewRosterService(manyParticipants(t, 3), 50)

	resp, err := svc.ListParticipants(service.RosterQuery{Page: 0, Limit: 200})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if resp.Pagination.Page != 1 {
		t.Fatalf("page 0 must clamp to 1, got %d", resp.Pagination.Page)
	}
	if resp.Pagination.Limit != 100 {
		t.Fatalf("limit 200 must clamp to 100, got %d", resp.Pagination.Limit)
	}
}

func TestListParticipantsPaginationBoundaries(t *testing.T) {
	svc := service.NewRosterService(manyParticipants(t, 101), 50)

	first, err := svc.ListParticipants(service.RosterQuery{Page: 1, Limit: 50})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if first.Pagination.TotalItems != 101 || first.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected totals: %+v", first.Pagination)
	}
	if !first.Pagination.HasNext || first.Pagination.HasPrev {
		t.Fatalf("page 1 of 3: hasNext must be true, hasPrev false: %+v", first.Pagination)
	}
	if len(first.Users) != 50 || first.Users[0].RowNumber != 1 {
		t.Fatalf("unexpected first page rows: len=%d", len(first.Users))
	}

	last, err := svc.ListParticipants(service.RosterQuery{Page: 3, Limit: 50})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(last.Users) != 1 || last.Users[0].RowNumber != 101 {
		t.Fatalf("expected 1 row numbered 101 on page 3, got %d rows", len(last.Users))
	}
	if last.Pagination.HasNext || !last.Pagination.HasPrev {
		t.Fatalf("page 3 of 3: hasNext must be false, hasPrev true: %+v", last.Pagination)
	}

	beyond, err := svc.ListParticipants(service.RosterQuery{Page: 9, Limit: 50})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(beyond.Users) != 0 {
		t.Fatalf("page past the end must be empty, got %d rows", len(beyond.Users))
	}
}

func TestListParticipantsSearchAndCorrectFilters(t *testing.T) {
	repo := newRosterRepo(t,
		[]model.User{
			{ID: "u1", Name: "12", PhoneNumber: "+79990001122"},
			{ID: "u2", Name: "34", PhoneNumber: "+79990003344"},
		},
		[]model.Question{
			{ID: 1, OrgID: "a", Number: 1, CorrectAnswer: "A"},
			{ID: 2, OrgID: "b", Number: 2, CorrectAnswer: "B"},
		},
		[]model.Attempt{
			{UserID: "u1", QuestionID: 1, Answer: "A", IsCorrect: true, Score: 1},
			{UserID: "u1", QuestionID: 2, Answer: "B", IsCorrect: true, Score: 1},
			{UserID: "u2", QuestionID: 1, Answer: "C", IsCorrect: false},
		},
	)
	svc := service.NewRosterService(repo, 50)

	bySearch, err := svc.ListParticipants(service.RosterQuery{Search: "3344"})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(bySearch.Users) != 1 || bySearch.Users[0].UserID != "u2" {
		t.Fatalf("phone search expected only u2, got %+v", bySearch.Users)
	}

	min := 2
	byMin, err := svc.ListParticipants(service.RosterQuery{MinCorrect: &min})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(byMin.Users) != 1 || byMin.Users[0].UserID != "u1" {
		t.Fatalf("minCorrect=2 expected only u1, got %+v", byMin.Users)
	}

	max := 0
	byMax, err := svc.ListParticipants(service.RosterQuery{MaxCorrect: &max})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(byMax.Users) != 1 || byMax.Users[0].UserID != "u2" {
		t.Fatalf("maxCorrect=0 expected only u2, got %+v", byMax.Users)
	}
}

func TestListParticipantsSorting(t *testing.T) {
	repo := newRosterRepo(t,
		[]model.User{
			{ID: "u1", Name: "beta"},
			{ID: "u2", Name: "Alpha"},
			{ID: "u3", Name: "gamma"},
		},
		[]model.Question{{ID: 1, OrgID: "a", Number: 1, CorrectAnswer: "A"}},
		[]model.Attempt{
			{UserID: "u1", QuestionID: 1, Answer: "A", IsCorrect: true, Score: 1},
			{UserID: "u2", QuestionID: 1, Answer: "B", IsCorrect: false},
			{UserID: "u3", QuestionID: 1, Answer: "A", IsCorrect: true, Score: 1},
		},
	)
	svc := service.NewRosterService(repo, 50)

	asc, err := svc.ListParticipants(service.RosterQuery{SortBy: "full_name", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	// Case-insensitive: "Alpha" sorts before "beta".
	if asc.Users[0].FullName != "Alpha" || asc.Users[1].FullName != "beta" || asc.Users[2].FullName != "gamma" {
		t.Fatalf("unexpected asc order: %+v", asc.Users)
	}

	desc, err := svc.ListParticipants(service.RosterQuery{SortBy: "correct_count", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if desc.Users[2].UserID != "u2" {
		t.Fatalf("expected u2 (0 correct) last on desc correct_count, got %+v", desc.Users)
	}

	unknown, err := svc.ListParticipants(service.RosterQuery{SortBy: "nonsense"})
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if unknown.Filters.SortBy != "full_name" || unknown.Filters.SortOrder != "asc" {
		t.Fatalf("unknown sort field must fall back to defaults: %+v", unknown.Filters)
	}
}
