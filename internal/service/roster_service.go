package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/naborsk/racequiz/internal/dto"
	"github.com/naborsk/racequiz/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	defaultRosterLimit = 10
	maxRosterLimit     = 100

	unknownName  = "Неизвестно"
	unknownPhone = "Не указан"
)

// RosterQuery carries the organizer roster listing parameters. Zero values
// fall back to defaults; Page and Limit are clamped, not rejected.
type RosterQuery struct {
	Page       int
	Limit      int
	Search     string // case-insensitive substring on name or phone
	MinCorrect *int
	MaxCorrect *int
	SortBy     string // "full_name", "phone_number", "correct_count"
	SortOrder  string // "asc" or "desc"
}

// RosterService builds the wide per-participant answer table for organizers:
// one row per participant, one slot per question number. The whole table is
// reduced from attempt rows on every request; with hundreds of participants
// and tens of questions that is cheaper than keeping it incrementally.
type RosterService interface {
	ListParticipants(query RosterQuery) (*dto.RosterResponseDTO, error)
}

type rosterService struct {
	attemptRepo  repository.AttemptRepository
	maxQuestions int
}

func NewRosterService(attemptRepo repository.AttemptRepository, maxQuestions int) RosterService {
	if maxQuestions <= 0 {
		maxQuestions = 50
	}
	return &rosterService{attemptRepo: attemptRepo, maxQuestions: maxQuestions}
}

// rosterRow accumulates one participant during the reduce. Answers live in a
// number-keyed map; the fixed-size slot slice exists only in the response.
type rosterRow struct {
	userID       string
	fullName     string
	phoneNumber  string
	correctCount int
	answers      map[int]dto.QuestionSlotDTO
}

func (s *rosterService) ListParticipants(query RosterQuery) (*dto.RosterResponseDTO, error) {
	attempts, err := s.attemptRepo.FindAllWithRefs()
	if err != nil {
		log.Error().Err(err).Msg("ListParticipants: loading attempts failed")
		return nil, fmt.Errorf("loading attempts: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))

	byUser := make(map[string]*rosterRow)
	var order []string // first-seen order keeps the base ordering stable
	for _, a := range attempts {
		if a.UserID == "" {
			continue
		}
		row, ok := byUser[a.UserID]
		if !ok {
			name := a.User.Name
			if name == "" {
				name = unknownName
			}
			phone := a.User.PhoneNumber
			if phone == "" {
				phone = unknownPhone
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(name), search) &&
				!strings.Contains(strings.ToLower(phone), search) {
				continue
			}
			row = &rosterRow{
				userID:      a.UserID,
				fullName:    name,
				phoneNumber: phone,
				answers:     make(map[int]dto.QuestionSlotDTO),
			}
			byUser[a.UserID] = row
			order = append(order, a.UserID)
		}

		number := a.Question.Number
		if number < 1 || number > s.maxQuestions || a.Answer == "" {
			continue
		}
		slot := dto.QuestionSlotDTO{Answer: a.Answer}
		if a.IsCorrect {
			slot.Correct = 1
			row.correctCount++
		}
		row.answers[number] = slot
	}

	rows := make([]*rosterRow, 0, len(order))
	for _, id := range order {
		row := byUser[id]
		if query.MinCorrect != nil && row.correctCount < *query.MinCorrect {
			continue
		}
		if query.MaxCorrect != nil && row.correctCount > *query.MaxCorrect {
			continue
		}
		rows = append(rows, row)
	}

	sortBy, sortOrder := s.sortRows(rows, query.SortBy, query.SortOrder)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultRosterLimit
	}
	if limit > maxRosterLimit {
		limit = maxRosterLimit
	}

	totalItems := len(rows)
	totalPages := (totalItems + limit - 1) / limit
	offset := (page - 1) * limit

	var pageRows []*rosterRow
	if offset < totalItems {
		end := offset + limit
		if end > totalItems {
			end = totalItems
		}
		pageRows = rows[offset:end]
	}

	users := make([]dto.RosterRowDTO, 0, len(pageRows))
	for i, row := range pageRows {
		users = append(users, dto.RosterRowDTO{
			RowNumber:    offset + i + 1,
			UserID:       row.userID,
			FullName:     row.fullName,
			PhoneNumber:  row.phoneNumber,
			CorrectCount: row.correctCount,
			Questions:    s.materializeSlots(row.answers),
		})
	}

	resp := &dto.RosterResponseDTO{
		Users: users,
		Pagination: dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
		Filters: dto.RosterFiltersDTO{
			Search:     query.Search,
			MinCorrect: formatOptionalInt(query.MinCorrect),
			MaxCorrect: formatOptionalInt(query.MaxCorrect),
			SortBy:     sortBy,
			SortOrder:  sortOrder,
		},
	}
	return resp, nil
}

func (s *rosterService) sortRows(rows []*rosterRow, sortBy, sortOrder string) (string, string) {
	switch sortBy {
	case "full_name", "phone_number", "correct_count":
	default:
		sortBy = "full_name"
	}
	if sortOrder != "desc" {
		sortOrder = "asc"
	}

	less := func(a, b *rosterRow) bool {
		switch sortBy {
		case "phone_number":
			return strings.ToLower(a.phoneNumber) < strings.ToLower(b.phoneNumber)
		case "correct_count":
			return a.correctCount < b.correctCount
		default:
			return strings.ToLower(a.fullName) < strings.ToLower(b.fullName)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if sortOrder == "desc" {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
	return sortBy, sortOrder
}

// materializeSlots expands the answer map into the fixed-size ordered slice
// the UI expects: slot index = question number - 1.
func (s *rosterService) materializeSlots(answers map[int]dto.QuestionSlotDTO) []dto.QuestionSlotDTO {
	slots := make([]dto.QuestionSlotDTO, s.maxQuestions)
	for number, slot := range answers {
		slots[number-1] = slot
	}
	return slots
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
