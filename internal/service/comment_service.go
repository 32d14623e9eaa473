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

type CommentService interface {
	List(answerID uint) ([]dto.CommentResponse, error)
	Add(answerID, userID uint, body string) (*dto.CommentResponse, error)
	Delete(commentID, userID uint) error
}

type commentService struct {
	comments repository.CommentRepository
	answers  repository.AnswerRepository
	guard    repository.OwnershipGuard
}

func NewCommentService(comments repository.CommentRepository, answers repository.AnswerRepository, guard repository.OwnershipGuard) CommentService {
	return &commentService{comments: comments, answers: answers, guard: guard}
}

func (s *commentService) List(answerID uint) ([]dto.CommentResponse, error) {
	rows, err := s.comments.ListByAnswer(answerID)
	if err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("Failed to list comments")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve comments", err)
	}

	resp := make([]dto.CommentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *toCommentResponse(&rows[i]))
	}
	return resp, nil
}

func (s *commentService) Add(answerID, userID uint, body string) (*dto.CommentResponse, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.Unauthenticated, "You must be logged in to comment")
	}
	if _, err := s.answers.FindByID(answerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Answer not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error adding comment", err)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.New(apperr.Validation, "Comment body is required")
	}

	comment := model.Comment{AnswerID: answerID, UserID: userID, Body: body}
	if err := s.comments.Create(&comment); err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("Failed to create comment")
		return nil, apperr.Wrap(apperr.Internal, "Error adding comment", err)
	}

	row, err := s.comments.FindJoined(comment.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve comment", err)
	}
	return toCommentResponse(row), nil
}

func (s *commentService) Delete(commentID, userID uint) error {
	if err := s.guard.Verify("comments", commentID, userID); err != nil {
		return remapOwnership(err, "Comment not found", "You can only delete your own comments")
	}
	if err := s.comments.Delete(commentID); err != nil {
		log.Error().Err(err).Uint("commentID", commentID).Msg("Failed to delete comment")
		return apperr.Wrap(apperr.Internal, "Error deleting comment", err)
	}
	return nil
}

func toCommentResponse(row *repository.CommentWithAuthor) *dto.CommentResponse {
	var resp dto.CommentResponse
	copier.Copy(&resp, &row.Comment)
	resp.Author = row.Author
	return &resp
}
