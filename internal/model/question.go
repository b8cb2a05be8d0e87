package model

import (
	"time"
)

// Question rows are immutable once created; the whole set is swapped out by
// the organizer sync upload, so there is no soft delete here.
type Question struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	OrgID            string    `json:"org_id" gorm:"uniqueIndex;not null"` // organization-scoped id printed inside the QR code
	Number           int       `json:"number" gorm:"not null"`             // 1-based display order
	QuestionText     string    `json:"question_text" gorm:"type:text;not null"`
	CorrectAnswer    string    `json:"correct_answer" gorm:"type:text;not null"`
	IncorrectAnswer1 string    `json:"incorrect_answer_1" gorm:"type:text"`
	IncorrectAnswer2 string    `json:"incorrect_answer_2" gorm:"type:text"`
	IncorrectAnswer3 string    `json:"incorrect_answer_3" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
}

// Options returns the answer options in stored order, blanks dropped.
func (q *Question) Options() []string {
	opts := make([]string, 0, 4)
	for _, o := range []string{q.CorrectAnswer, q.IncorrectAnswer1, q.IncorrectAnswer2, q.IncorrectAnswer3} {
		if o != "" {
			opts = append(opts, o)
		}
	}
	return opts
}
