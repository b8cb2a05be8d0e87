package service

import (
	"strings"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserService manages participant start numbers. The display name field holds
// the start number, so both the participant self-registration and the admin
// correction go through the same update.
type UserService interface {
	UpdateStartNumber(userID string, newNumber string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpdateStartNumber(userID string, newNumber string) error {
	if strings.TrimSpace(newNumber) == "" {
		return domain.ErrValidation
	}
	if err := s.userRepo.UpdateName(userID, newNumber); err != nil {
		return err
	}
	log.Info().Str("userID", userID).Str("number", newNumber).Msg("Start number updated")
	return nil
}
