package model

import "time"

type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AnswerID  uint      `json:"answer_id" gorm:"not null;index"`
	Answer    Answer    `json:"-" gorm:"foreignKey:AnswerID"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
