package dto

import "time"

// UserResponse is the identity returned by login/register. The
// password hash never leaves the service layer.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// AuthResponse couples the identity with a signed session token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

type QuestionResponse struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"user_id"`
	Author            string    `json:"author"`
	Title             string    `json:"title"`
	Body              string    `json:"body"`
	Tags              string    `json:"tags"`
	Views             int64     `json:"views"`
	AnswerCount       int64     `json:"answer_count"`
	HasAcceptedAnswer bool      `json:"has_accepted_answer"`
	CreatedAt         time.Time `json:"created_at"`
}

type AnswerResponse struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	UserID     uint      `json:"user_id"`
	Author     string    `json:"author"`
	Body       string    `json:"body"`
	IsAccepted bool      `json:"is_accepted"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	AnswerID  uint      `json:"answer_id"`
	UserID    uint      `json:"user_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse documents the failure envelope for swagger.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Code    string `json:"code,omitempty" example:"forbidden"`
	Message string `json:"message,omitempty"`
}
