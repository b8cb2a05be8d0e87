package dto

// QuestionViewDTO is what a participant sees when opening a question:
// options are shuffled so the correct one is never first.
type QuestionViewDTO struct {
	ID      uint     `json:"id"`
	Number  int      `json:"number"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

// AttemptResponseDTO confirms a recorded answer.
type AttemptResponseDTO struct {
	Message    string `json:"message"`
	QuestionID uint   `json:"question_id"`
	IsCorrect  bool   `json:"is_correct"`
	Score      int    `json:"score"`
}

// SyncResponseDTO is returned by the question bulk upload. QuestionsCreated
// counts rows parsed from the file.
type SyncResponseDTO struct {
	Message          string `json:"message"`
	QuestionsCreated int    `json:"questionsCreated"`
}

// TelemetrySyncResponseDTO is returned by the telemetry bulk upload.
// ResultsCreated counts rows parsed from the file; invalid rows are dropped
// before insert, so the stored count may be lower.
type TelemetrySyncResponseDTO struct {
	Message        string `json:"message"`
	ResultsCreated int    `json:"resultsCreated"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
