package model

import "time"

type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   Question  `json:"-" gorm:"foreignKey:QuestionID"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       User      `json:"-" gorm:"foreignKey:UserID"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	IsAccepted bool      `json:"is_accepted" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
