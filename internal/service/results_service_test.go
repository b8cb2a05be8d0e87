package service_test

import (
	"testing"

	"github.com/naborsk/racequiz/internal/dto"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository/memory"
	"github.com/naborsk/racequiz/internal/service"
)

func newResultsFixture(t *testing.T) service.ResultsService {
	t.Helper()
	users := memory.NewUserRepository(
		model.User{ID: "u1", Name: "12", PhoneNumber: "+79990001122"},
		model.User{ID: "u2", Name: "13", PhoneNumber: "+79990002233"},
		model.User{ID: "u3", Name: "14"},
		model.User{ID: "u4", Name: "no_number"}, // neither attempts nor telemetry
	)

	attempts := memory.NewAttemptRepository()
	for _, a := range []model.Attempt{
		{UserID: "u1", QuestionID: 1, Answer: "A", IsCorrect: true, Score: 1},
		{UserID: "u1", QuestionID: 2, Answer: "B", IsCorrect: false},
		{UserID: "u2", QuestionID: 1, Answer: "A", IsCorrect: true, Score: 1},
		{UserID: "u2", QuestionID: 2, Answer: "C", IsCorrect: true, Score: 1},
	} {
		a := a
		if err := attempts.Create(&a); err != nil {
			t.Fatalf("seeding attempts: %v", err)
		}
	}

	telemetry := memory.NewTelemetryRepository()
	if err := telemetry.ReplaceAll([]model.Telemetry{
		{StartNumber: "12", GroupName: "M", Points: 5},
		{StartNumber: "12", GroupName: "M", Points: 3},
		{StartNumber: "14", GroupName: "W", Points: 7}, // u3: telemetry only
		{StartNumber: "777", GroupName: "M", Points: 9}, // no matching participant
	}); err != nil {
		t.Fatalf("seeding telemetry: %v", err)
	}

	return service.NewResultsService(users, attempts, telemetry)
}

func summaryByUser(t *testing.T, summaries []dto.ParticipantSummaryDTO, userID string) dto.ParticipantSummaryDTO {
	t.Helper()
	for _, s := range summaries {
		if s.UserID == userID {
			return s
		}
	}
	t.Fatalf("no summary for %s in %+v", userID, summaries)
	return dto.ParticipantSummaryDTO{}
}

func TestComputeSummariesTotals(t *testing.T) {
	svc := newResultsFixture(t)

	summaries, err := svc.ComputeSummaries(service.SummaryFilter{})
	if err != nil {
		t.Fatalf("compute summaries: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	u1 := summaryByUser(t, summaries, "u1")
	if u1.TotalQuestions != 2 || u1.QuizPoints != 1 || u1.TelemetryPoints != 8 || u1.TotalPoints != 9 {
		t.Fatalf("unexpected u1 summary: %+v", u1)
	}
	if u1.StartNumber != "12" || u1.GroupName != "M" {
		t.Fatalf("unexpected u1 identity fields: %+v", u1)
	}

	// Quiz only: telemetry points default to zero, the total stays defined.
	u2 := summaryByUser(t, summaries, "u2")
	if u2.QuizPoints != 2 || u2.TelemetryPoints != 0 || u2.TotalPoints != 2 {
		t.Fatalf("unexpected u2 summary: %+v", u2)
	}

	// Telemetry only: zero quiz points, still one row.
	u3 := summaryByUser(t, summaries, "u3")
	if u3.TotalQuestions != 0 || u3.QuizPoints != 0 || u3.TelemetryPoints != 7 || u3.TotalPoints != 7 {
		t.Fatalf("unexpected u3 summary: %+v", u3)
	}

	for _, s := range summaries {
		if s.TotalPoints != s.QuizPoints+s.TelemetryPoints {
			t.Fatalf("totals identity violated for %+v", s)
		}
	}
}

func TestComputeSummariesSingleRowPerParticipant(t *testing.T) {
	svc := newResultsFixture(t)

	summaries, err := svc.ComputeSummaries(service.SummaryFilter{})
	if err != nil {
		t.Fatalf("compute summaries: %v", err)
	}
	seen := make(map[string]bool)
	for _, s := range summaries {
		if seen[s.UserID] {
			t.Fatalf("user %s appears twice", s.UserID)
		}
		seen[s.UserID] = true
	}
}

func TestComputeSummariesFilter(t *testing.T) {
	svc := newResultsFixture(t)

	byGroup, err := svc.ComputeSummaries(service.SummaryFilter{Group: "W"})
	if err != nil {
		t.Fatalf("compute summaries: %v", err)
	}
	if len(byGroup) != 1 || byGroup[0].UserID != "u3" {
		t.Fatalf("expected only u3 in group W, got %+v", byGroup)
	}

	byNumber, err := svc.ComputeSummaries(service.SummaryFilter{StartNumber: "12"})
	if err != nil {
		t.Fatalf("compute summaries: %v", err)
	}
	if len(byNumber) != 1 || byNumber[0].UserID != "u1" {
		t.Fatalf("expected only u1 for start number 12, got %+v", byNumber)
	}
}

func TestComputeSummariesNameJoinIsExact(t *testing.T) {
	users := memory.NewUserRepository(
		model.User{ID: "u1", Name: "12"},
	)
	attempts := memory.NewAttemptRepository()
	a := model.Attempt{UserID: "u1", QuestionID: 1, Answer: "A", IsCorrect: true, Score: 1}
	if err := attempts.Create(&a); err != nil {
		t.Fatalf("seeding attempt: %v", err)
	}
	telemetry := memory.NewTelemetryRepository()
	if err := telemetry.ReplaceAll([]model.Telemetry{
		{StartNumber: " 12", GroupName: "M", Points: 5}, // leading space: no match
	}); err != nil {
		t.Fatalf("seeding telemetry: %v", err)
	}
	svc := service.NewResultsService(users, attempts, telemetry)

	summaries, err := svc.ComputeSummaries(service.SummaryFilter{})
	if err != nil {
		t.Fatalf("compute summaries: %v", err)
	}
	u1 := summaryByUser(t, summaries, "u1")
	if u1.TelemetryPoints != 0 {
		t.Fatalf("whitespace-differing start number must not join, got %+v", u1)
	}
}
