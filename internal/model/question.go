package model

import "time"

type Question struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	UserID            uint      `json:"user_id" gorm:"not null;index"`
	User              User      `json:"-" gorm:"foreignKey:UserID"`
	Title             string    `json:"title" gorm:"not null"`
	Body              string    `json:"body" gorm:"type:text;not null"`
	Tags              string    `json:"tags"` // free text, comma-separated
	Views             int64     `json:"views" gorm:"not null;default:0"`
	AnswerCount       int64     `json:"answer_count" gorm:"not null;default:0"`
	HasAcceptedAnswer bool      `json:"has_accepted_answer" gorm:"not null;default:false"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
