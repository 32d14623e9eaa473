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

type AnswerService interface {
	List(questionID uint) ([]dto.AnswerResponse, error)
	Submit(questionID, userID uint, body string) (*dto.AnswerResponse, error)
	Update(answerID, userID uint, body string) (*dto.AnswerResponse, error)
	Delete(answerID, userID uint) error
	Accept(answerID, userID uint) (*dto.AnswerResponse, error)
}

type answerService struct {
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
	guard     repository.OwnershipGuard
}

func NewAnswerService(answers repository.AnswerRepository, questions repository.QuestionRepository, guard repository.OwnershipGuard) AnswerService {
	return &answerService{answers: answers, questions: questions, guard: guard}
}

func (s *answerService) List(questionID uint) ([]dto.AnswerResponse, error) {
	rows, err := s.answers.ListByQuestion(questionID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to list answers")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve answers", err)
	}

	resp := make([]dto.AnswerResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *toAnswerResponse(&rows[i]))
	}
	return resp, nil
}

func (s *answerService) Submit(questionID, userID uint, body string) (*dto.AnswerResponse, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.Unauthenticated, "You must be logged in to post an answer")
	}
	if _, err := s.questions.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Question not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error submitting answer", err)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.New(apperr.Validation, "Answer body is required")
	}

	answer := model.Answer{QuestionID: questionID, UserID: userID, Body: body}
	if err := s.answers.Create(&answer); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create answer")
		return nil, apperr.Wrap(apperr.Internal, "Error submitting answer", err)
	}

	return s.refetch(answer.ID)
}

func (s *answerService) Update(answerID, userID uint, body string) (*dto.AnswerResponse, error) {
	if err := s.guard.Verify("answers", answerID, userID); err != nil {
		return nil, remapOwnership(err, "Answer not found", "You can only edit your own answers")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.New(apperr.Validation, "Answer body is required")
	}

	answer, err := s.answers.FindByID(answerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error updating answer", err)
	}
	answer.Body = body

	if err := s.answers.Update(answer); err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("Failed to update answer")
		return nil, apperr.Wrap(apperr.Internal, "Error updating answer", err)
	}

	return s.refetch(answerID)
}

func (s *answerService) Delete(answerID, userID uint) error {
	if err := s.guard.Verify("answers", answerID, userID); err != nil {
		return remapOwnership(err, "Answer not found", "You can only delete your own answers")
	}

	answer, err := s.answers.FindByID(answerID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error deleting answer", err)
	}

	if err := s.answers.Delete(answerID, answer.QuestionID); err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("Failed to delete answer")
		return apperr.Wrap(apperr.Internal, "Error deleting answer", err)
	}
	return nil
}

// Accept flags one answer as the solution. Only the owner of the
// parent question may accept, and accepting unaccepts every other
// answer on that question.
func (s *answerService) Accept(answerID, userID uint) (*dto.AnswerResponse, error) {
	answer, err := s.answers.FindByID(answerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Answer not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error accepting answer", err)
	}

	question, err := s.questions.FindByID(answer.QuestionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Question not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error accepting answer", err)
	}

	if question.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "Only the question owner can accept answers")
	}

	if err := s.answers.Accept(answerID, answer.QuestionID); err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("Failed to accept answer")
		return nil, apperr.Wrap(apperr.Internal, "Error accepting answer", err)
	}

	return s.refetch(answerID)
}

func (s *answerService) refetch(id uint) (*dto.AnswerResponse, error) {
	row, err := s.answers.FindJoined(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Answer not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve answer", err)
	}
	return toAnswerResponse(row), nil
}

func toAnswerResponse(row *repository.AnswerWithAuthor) *dto.AnswerResponse {
	var resp dto.AnswerResponse
	copier.Copy(&resp, &row.Answer)
	resp.Author = row.Author
	return &resp
}
