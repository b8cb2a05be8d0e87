package dto

// ParticipantSummaryDTO is one row of the organizer results table: quiz and
// telemetry points joined per participant. Derived on every read, never stored.
type ParticipantSummaryDTO struct {
	UserID          string `json:"user_id"`
	StartNumber     string `json:"start_number"`
	PhoneNumber     string `json:"phone_number"`
	GroupName       string `json:"group_name"`
	TotalQuestions  int    `json:"total_questions"`
	QuizPoints      int    `json:"quiz_points"`
	TelemetryPoints int    `json:"telemetry_points"`
	TotalPoints     int    `json:"total_points"`
}

type ResultsResponseDTO struct {
	Results []ParticipantSummaryDTO `json:"results"`
}

// QuestionSlotDTO is one cell of the wide roster row. Unanswered slots stay
// at the zero value {"", 0}.
type QuestionSlotDTO struct {
	Answer  string `json:"answer"`
	Correct int    `json:"correct"`
}

// RosterRowDTO is one participant line in the organizer roster, with a
// fixed-size slice of answer slots indexed by question number - 1.
type RosterRowDTO struct {
	RowNumber    int               `json:"row_number"`
	UserID       string            `json:"user_id"`
	FullName     string            `json:"full_name"`
	PhoneNumber  string            `json:"phone_number"`
	CorrectCount int               `json:"correct_count"`
	Questions    []QuestionSlotDTO `json:"questions"`
}

type PaginationDTO struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type RosterFiltersDTO struct {
	Search     string `json:"search"`
	MinCorrect string `json:"minCorrect"`
	MaxCorrect string `json:"maxCorrect"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
}

type RosterResponseDTO struct {
	Users      []RosterRowDTO   `json:"users"`
	Pagination PaginationDTO    `json:"pagination"`
	Filters    RosterFiltersDTO `json:"filters"`
}
