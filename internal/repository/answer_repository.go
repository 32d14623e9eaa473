package repository

import (
	"github.com/unistack-app/unistack/internal/model"
	"gorm.io/gorm"
)

// AnswerWithAuthor is an answer row joined to the author's email.
type AnswerWithAuthor struct {
	model.Answer
	Author string
}

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByID(id uint) (*model.Answer, error)
	FindJoined(id uint) (*AnswerWithAuthor, error)
	ListByQuestion(questionID uint) ([]AnswerWithAuthor, error)
	Update(answer *model.Answer) error
	Delete(id, questionID uint) error
	Accept(answerID, questionID uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Create inserts the answer and bumps the parent question's
// denormalized answer_count inside one transaction.
func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).Where("id = ?", answer.QuestionID).
			UpdateColumn("answer_count", gorm.Expr("answer_count + 1")).Error
	})
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) joined() *gorm.DB {
	return r.db.Table("answers").
		Select("answers.*, users.email AS author").
		Joins("JOIN users ON users.id = answers.user_id")
}

func (r *answerRepository) FindJoined(id uint) (*AnswerWithAuthor, error) {
	var row AnswerWithAuthor
	if err := r.joined().Where("answers.id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByQuestion returns the accepted answer first, then the rest in
// creation order.
func (r *answerRepository) ListByQuestion(questionID uint) ([]AnswerWithAuthor, error) {
	var rows []AnswerWithAuthor
	err := r.joined().
		Where("answers.question_id = ?", questionID).
		Order("answers.is_accepted DESC, answers.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

// Delete removes the answer and decrements the parent question's
// answer_count, floored at zero, inside one transaction.
func (r *answerRepository) Delete(id, questionID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Answer{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).
			Where("id = ? AND answer_count > 0", questionID).
			UpdateColumn("answer_count", gorm.Expr("answer_count - 1")).Error
	})
}

// Accept clears is_accepted across the question's answers, flags the
// chosen one and marks the question, all inside one transaction so the
// at-most-one-accepted invariant holds even under concurrent accepts.
func (r *answerRepository) Accept(answerID, questionID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Answer{}).Where("question_id = ?", questionID).
			Update("is_accepted", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Answer{}).Where("id = ?", answerID).
			Update("is_accepted", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).Where("id = ?", questionID).
			Update("has_accepted_answer", true).Error
	})
}
