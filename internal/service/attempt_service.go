package service

import (
	"errors"
	"fmt"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
	"github.com/rs/zerolog/log"
)

// AttemptService records quiz answers. Correctness is decided at write time
// by exact string comparison with the stored correct answer.
type AttemptService interface {
	RecordAnswer(userID string, questionID uint, answer string) (*model.Attempt, error)
}

type attemptService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
}

func NewAttemptService(questionRepo repository.QuestionRepository, attemptRepo repository.AttemptRepository) AttemptService {
	return &attemptService{questionRepo: questionRepo, attemptRepo: attemptRepo}
}

func (s *attemptService) RecordAnswer(userID string, questionID uint, answer string) (*model.Attempt, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return nil, err
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("RecordAnswer: question lookup failed")
		return nil, fmt.Errorf("looking up question %d: %w", questionID, err)
	}

	// The existence check keeps the common duplicate path cheap; the unique
	// index on (user_id, question_id) closes the race between two identical
	// submissions.
	exists, err := s.attemptRepo.ExistsByUserAndQuestion(userID, questionID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Uint("questionID", questionID).Msg("RecordAnswer: existence check failed")
		return nil, fmt.Errorf("checking existing attempt: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyAnswered
	}

	isCorrect := question.CorrectAnswer == answer
	attempt := model.Attempt{
		UserID:     userID,
		QuestionID: question.ID,
		Answer:     answer,
		IsCorrect:  isCorrect,
	}
	if isCorrect {
		attempt.Score = 1
	}

	if err := s.attemptRepo.Create(&attempt); err != nil {
		if errors.Is(err, domain.ErrAlreadyAnswered) {
			return nil, err
		}
		log.Error().Err(err).Str("userID", userID).Uint("questionID", questionID).Msg("RecordAnswer: failed to store attempt")
		return nil, fmt.Errorf("storing attempt: %w", err)
	}

	log.Info().Str("userID", userID).Uint("questionID", question.ID).Bool("correct", isCorrect).Msg("Answer recorded")
	return &attempt, nil
}
