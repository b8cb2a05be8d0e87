package model

import (
	"time"
)

// Attempt is one recorded answer by one participant to one question.
// The composite unique index backs the at-most-one-attempt invariant even
// when two identical submissions race past the existence check.
type Attempt struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     string    `json:"user_id" gorm:"type:text;not null;uniqueIndex:idx_attempts_user_question"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_attempts_user_question"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer     string    `json:"answer" gorm:"type:text;not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null"`
	Score      int       `json:"score" gorm:"not null"` // 0 or 1, fixed at write time
	CreatedAt  time.Time `json:"created_at"`
}
