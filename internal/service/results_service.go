package service

import (
	"fmt"

	"github.com/naborsk/racequiz/internal/dto"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
	"github.com/rs/zerolog/log"
)

// SummaryFilter optionally narrows the computed summaries. Empty fields match
// everything; set fields match exactly.
type SummaryFilter struct {
	StartNumber string
	Group       string
}

// ResultsService joins quiz attempts with uploaded telemetry into one summary
// row per participant. Summaries are recomputed on every call, never cached.
type ResultsService interface {
	ComputeSummaries(filter SummaryFilter) ([]dto.ParticipantSummaryDTO, error)
}

type resultsService struct {
	userRepo      repository.UserRepository
	attemptRepo   repository.AttemptRepository
	telemetryRepo repository.TelemetryRepository
}

func NewResultsService(userRepo repository.UserRepository, attemptRepo repository.AttemptRepository, telemetryRepo repository.TelemetryRepository) ResultsService {
	return &resultsService{userRepo: userRepo, attemptRepo: attemptRepo, telemetryRepo: telemetryRepo}
}

func (s *resultsService) ComputeSummaries(filter SummaryFilter) ([]dto.ParticipantSummaryDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ComputeSummaries: loading users failed")
		return nil, fmt.Errorf("loading users: %w", err)
	}
	attempts, err := s.attemptRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ComputeSummaries: loading attempts failed")
		return nil, fmt.Errorf("loading attempts: %w", err)
	}
	telemetry, err := s.telemetryRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ComputeSummaries: loading telemetry failed")
		return nil, fmt.Errorf("loading telemetry: %w", err)
	}

	attemptsByUser := make(map[string][]model.Attempt, len(users))
	for _, a := range attempts {
		attemptsByUser[a.UserID] = append(attemptsByUser[a.UserID], a)
	}
	telemetryIndex := indexTelemetryByStartNumber(telemetry)

	summaries := make([]dto.ParticipantSummaryDTO, 0, len(users))
	for _, user := range users {
		userAttempts := attemptsByUser[user.ID]
		userTelemetry := telemetryForUser(telemetryIndex, user)
		if len(userAttempts) == 0 && len(userTelemetry) == 0 {
			continue
		}

		summary := dto.ParticipantSummaryDTO{
			UserID:      user.ID,
			StartNumber: user.Name,
			PhoneNumber: user.PhoneNumber,
		}
		summary.TotalQuestions = len(userAttempts)
		for _, a := range userAttempts {
			if a.IsCorrect {
				summary.QuizPoints++
			}
		}
		for _, t := range userTelemetry {
			summary.TelemetryPoints += t.Points
			if summary.GroupName == "" {
				summary.GroupName = t.GroupName
			}
		}
		summary.TotalPoints = summary.QuizPoints + summary.TelemetryPoints

		if filter.StartNumber != "" && summary.StartNumber != filter.StartNumber {
			continue
		}
		if filter.Group != "" && summary.GroupName != filter.Group {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func indexTelemetryByStartNumber(rows []model.Telemetry) map[string][]model.Telemetry {
	index := make(map[string][]model.Telemetry, len(rows))
	for _, row := range rows {
		index[row.StartNumber] = append(index[row.StartNumber], row)
	}
	return index
}

// telemetryForUser is the single place where telemetry rows are joined to a
// participant. The join key is the display name, which holds the start
// number, and the match is exact: no trimming, no case folding. If the join
// ever moves to an explicit id, only this function changes.
func telemetryForUser(index map[string][]model.Telemetry, user model.User) []model.Telemetry {
	return index[user.Name]
}
