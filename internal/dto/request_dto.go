package dto

// AnswerSubmitDTO is the body of POST /answer.
type AnswerSubmitDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// RegisterNumberDTO is the body of POST /register: a participant claims
// their start number, which becomes their display name.
type RegisterNumberDTO struct {
	StartNumber int `json:"start_number" binding:"required,gt=0"`
}

// UpdateNumberDTO is the body of the admin PATCH on a participant.
type UpdateNumberDTO struct {
	NewNumber string `json:"new_number" binding:"required"`
}
