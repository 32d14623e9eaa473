package service

import (
	"errors"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/unistack-app/unistack/internal/apperr"
	"github.com/unistack-app/unistack/internal/dto"
	"github.com/unistack-app/unistack/internal/model"
	"github.com/unistack-app/unistack/internal/repository"
	"gorm.io/gorm"
)

type QuestionService interface {
	List(filter dto.QuestionFilter) ([]dto.QuestionResponse, error)
	Submit(userID uint, title, body, tags string) (*dto.QuestionResponse, error)
	Update(questionID, userID uint, title, body, tags string) (*dto.QuestionResponse, error)
	Delete(questionID, userID uint) error
	IncrementViews(questionID uint) error
}

type questionService struct {
	questions repository.QuestionRepository
	guard     repository.OwnershipGuard
}

func NewQuestionService(questions repository.QuestionRepository, guard repository.OwnershipGuard) QuestionService {
	return &questionService{questions: questions, guard: guard}
}

func (s *questionService) List(filter dto.QuestionFilter) ([]dto.QuestionResponse, error) {
	rows, err := s.questions.List(filter.OwnerID, filter.TagSubstring, filter.TextSearch, filter.Sort == "oldest")
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve questions", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *toQuestionResponse(&rows[i]))
	}
	return resp, nil
}

func (s *questionService) Submit(userID uint, title, body, tags string) (*dto.QuestionResponse, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.Unauthenticated, "You must be logged in to ask a question")
	}
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, apperr.New(apperr.Validation, "Title and body are required")
	}

	question := model.Question{UserID: userID, Title: title, Body: body, Tags: strings.TrimSpace(tags)}
	if err := s.questions.Create(&question); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to create question")
		return nil, apperr.Wrap(apperr.Internal, "Error submitting question", err)
	}

	return s.refetch(question.ID)
}

func (s *questionService) Update(questionID, userID uint, title, body, tags string) (*dto.QuestionResponse, error) {
	if err := s.guard.Verify("questions", questionID, userID); err != nil {
		return nil, remapOwnership(err, "Question not found", "You can only edit your own questions")
	}

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, apperr.New(apperr.Validation, "Title and body are required")
	}

	question, err := s.questions.FindByID(questionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error updating question", err)
	}
	question.Title = title
	question.Body = body
	question.Tags = strings.TrimSpace(tags)

	if err := s.questions.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to update question")
		return nil, apperr.Wrap(apperr.Internal, "Error updating question", err)
	}

	return s.refetch(questionID)
}

func (s *questionService) Delete(questionID, userID uint) error {
	if err := s.guard.Verify("questions", questionID, userID); err != nil {
		return remapOwnership(err, "Question not found", "You can only delete your own questions")
	}
	if err := s.questions.DeleteCascade(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to delete question")
		return apperr.Wrap(apperr.Internal, "Error deleting question", err)
	}
	return nil
}

// IncrementViews has no ownership check: anonymous viewers count too.
func (s *questionService) IncrementViews(questionID uint) error {
	affected, err := s.questions.IncrementViews(questionID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error updating view count", err)
	}
	if affected == 0 {
		return apperr.New(apperr.NotFound, "Question not found")
	}
	return nil
}

func (s *questionService) refetch(id uint) (*dto.QuestionResponse, error) {
	row, err := s.questions.FindJoined(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Question not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve question", err)
	}
	return toQuestionResponse(row), nil
}

func toQuestionResponse(row *repository.QuestionWithAuthor) *dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, &row.Question)
	resp.Author = row.Author
	return &resp
}
