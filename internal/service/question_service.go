package service

import (
	"fmt"
	"math/rand"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/dto"
	"github.com/naborsk/racequiz/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionService serves a question to a participant who scanned its QR code.
type QuestionService interface {
	// GetForUser returns the question behind an org-scoped id with shuffled
	// options. domain.ErrAlreadyAnswered means the participant should be sent
	// back instead of seeing the question again; domain.ErrNumberRequired
	// means they must register a start number first.
	GetForUser(userID string, orgID string) (*dto.QuestionViewDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	userRepo     repository.UserRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, attemptRepo repository.AttemptRepository, userRepo repository.UserRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, attemptRepo: attemptRepo, userRepo: userRepo}
}

func (s *questionService) GetForUser(userID string, orgID string) (*dto.QuestionViewDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.HasStartNumber() {
		return nil, domain.ErrNumberRequired
	}

	question, err := s.questionRepo.FindByOrgID(orgID)
	if err != nil {
		return nil, err
	}

	answered, err := s.attemptRepo.ExistsByUserAndQuestion(userID, question.ID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Str("orgID", orgID).Msg("GetForUser: attempt lookup failed")
		return nil, fmt.Errorf("checking existing attempt: %w", err)
	}
	if answered {
		return nil, domain.ErrAlreadyAnswered
	}

	options := question.Options()
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &dto.QuestionViewDTO{
		ID:      question.ID,
		Number:  question.Number,
		Text:    question.QuestionText,
		Options: options,
	}, nil
}
