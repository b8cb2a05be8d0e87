package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
	"github.com/naborsk/racequiz/internal/tabular"
	"github.com/rs/zerolog/log"
)

// Organizer exports use these column headers. Repeated headers come back from
// the decoder with ".1"/".2" suffixes; older exports pad them with spaces
// instead, so both spellings are tried.
const (
	colQuestionNumber  = "№ Вопроса"
	colQuestionText    = "Вопрос"
	colCorrectAnswer   = "Верный ответ"
	colIncorrectAnswer = "Неверный ответ"

	colGroup       = "Группа"
	colStartNumber = "Номер участника"
	colPoints      = "Баллы"
)

// SyncService performs the two organizer bulk uploads. Both replace the whole
// stored set in a single transaction: readers see the full old set or the
// full new set, never a mix.
type SyncService interface {
	// ReplaceQuestions swaps the question set for the parsed rows and returns
	// the number of rows parsed from the file.
	ReplaceQuestions(rows []tabular.Record) (int, error)
	// ReplaceTelemetry swaps the telemetry set. Rows with a blank start
	// number, a blank group, or non-numeric points are dropped silently; the
	// returned count is still the number of rows parsed from the file.
	ReplaceTelemetry(rows []tabular.Record) (int, error)
}

type syncService struct {
	questionRepo  repository.QuestionRepository
	telemetryRepo repository.TelemetryRepository
}

func NewSyncService(questionRepo repository.QuestionRepository, telemetryRepo repository.TelemetryRepository) SyncService {
	return &syncService{questionRepo: questionRepo, telemetryRepo: telemetryRepo}
}

func (s *syncService) ReplaceQuestions(rows []tabular.Record) (int, error) {
	questions := make([]model.Question, 0, len(rows))
	for _, row := range rows {
		number, _ := strconv.Atoi(strings.TrimSpace(row[colQuestionNumber]))
		questions = append(questions, model.Question{
			OrgID:            row["org_id"],
			Number:           number,
			QuestionText:     row[colQuestionText],
			CorrectAnswer:    row[colCorrectAnswer],
			IncorrectAnswer1: row[colIncorrectAnswer],
			IncorrectAnswer2: firstNonEmpty(row[colIncorrectAnswer+".1"], row[colIncorrectAnswer+" "]),
			IncorrectAnswer3: firstNonEmpty(row[colIncorrectAnswer+".2"], row[colIncorrectAnswer+"  "]),
		})
	}

	if err := s.questionRepo.ReplaceAll(questions); err != nil {
		log.Error().Err(err).Int("rows", len(rows)).Msg("ReplaceQuestions: transaction failed")
		return 0, fmt.Errorf("replacing questions: %w", err)
	}

	log.Info().Int("parsed", len(rows)).Msg("Question set replaced")
	return len(rows), nil
}

func (s *syncService) ReplaceTelemetry(rows []tabular.Record) (int, error) {
	valid := make([]model.Telemetry, 0, len(rows))
	for _, row := range rows {
		startNumber := row[colStartNumber]
		group := row[colGroup]
		points, err := strconv.Atoi(strings.TrimSpace(row[colPoints]))
		if err != nil || strings.TrimSpace(startNumber) == "" || strings.TrimSpace(group) == "" {
			continue
		}
		valid = append(valid, model.Telemetry{
			StartNumber: startNumber,
			GroupName:   group,
			Points:      points,
		})
	}

	if err := s.telemetryRepo.ReplaceAll(valid); err != nil {
		log.Error().Err(err).Int("rows", len(rows)).Msg("ReplaceTelemetry: transaction failed")
		return 0, fmt.Errorf("replacing telemetry: %w", err)
	}

	log.Info().Int("parsed", len(rows)).Int("stored", len(valid)).Msg("Telemetry set replaced")
	return len(rows), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
