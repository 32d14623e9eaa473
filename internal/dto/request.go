package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexID accepts both JSON numbers and numeric strings. The legacy
// frontend is not consistent about which one it sends for ids.
type FlexID uint

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = FlexID(v)
	return nil
}

func (f FlexID) Uint() uint { return uint(f) }

// ActionRequest is the decoded body of a write action. One flat shape
// for every action; absent fields stay at their zero value.
type ActionRequest struct {
	Action     string `json:"action"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	UserID     FlexID `json:"userId"`
	QuestionID FlexID `json:"questionId"`
	AnswerID   FlexID `json:"answerId"`
	CommentID  FlexID `json:"commentId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Tags       string `json:"tags"`
}

// QuestionFilter collects the optional getQuestions predicates. All
// present predicates are AND-combined.
type QuestionFilter struct {
	OwnerID      uint
	TagSubstring string
	TextSearch   string
	Sort         string // "newest" (default) or "oldest"
}
