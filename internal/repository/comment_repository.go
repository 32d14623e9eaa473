package repository

import (
	"github.com/unistack-app/unistack/internal/model"
	"gorm.io/gorm"
)

// CommentWithAuthor is a comment row joined to the author's email.
type CommentWithAuthor struct {
	model.Comment
	Author string
}

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id uint) (*model.Comment, error)
	FindJoined(id uint) (*CommentWithAuthor, error)
	ListByAnswer(answerID uint) ([]CommentWithAuthor, error)
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) joined() *gorm.DB {
	return r.db.Table("comments").
		Select("comments.*, users.email AS author").
		Joins("JOIN users ON users.id = comments.user_id")
}

func (r *commentRepository) FindJoined(id uint) (*CommentWithAuthor, error) {
	var row CommentWithAuthor
	if err := r.joined().Where("comments.id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *commentRepository) ListByAnswer(answerID uint) ([]CommentWithAuthor, error) {
	var rows []CommentWithAuthor
	err := r.joined().
		Where("comments.answer_id = ?", answerID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Comment{}, id).Error
}
