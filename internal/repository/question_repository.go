package repository

import (
	"github.com/unistack-app/unistack/internal/model"
	"gorm.io/gorm"
)

// QuestionWithAuthor is a question row joined to the author's email
// with the answer count computed live by subquery.
type QuestionWithAuthor struct {
	model.Question
	Author string
}

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindJoined(id uint) (*QuestionWithAuthor, error)
	List(ownerID uint, tag, search string, oldestFirst bool) ([]QuestionWithAuthor, error)
	Update(question *model.Question) error
	DeleteCascade(id uint) error
	IncrementViews(id uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) joined() *gorm.DB {
	return r.db.Table("questions").
		Select("questions.*, users.email AS author, (SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id) AS answer_count").
		Joins("JOIN users ON users.id = questions.user_id")
}

func (r *questionRepository) FindJoined(id uint) (*QuestionWithAuthor, error) {
	var row QuestionWithAuthor
	if err := r.joined().Where("questions.id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *questionRepository) List(ownerID uint, tag, search string, oldestFirst bool) ([]QuestionWithAuthor, error) {
	q := r.joined()
	if ownerID != 0 {
		q = q.Where("questions.user_id = ?", ownerID)
	}
	if tag != "" {
		q = q.Where("questions.tags LIKE ?", "%"+tag+"%")
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("(questions.title LIKE ? OR questions.body LIKE ?)", like, like)
	}
	order := "questions.created_at DESC"
	if oldestFirst {
		order = "questions.created_at ASC"
	}

	var rows []QuestionWithAuthor
	if err := q.Order(order).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

// DeleteCascade removes the question together with its answers and
// their comments in one transaction, so no orphaned rows survive.
func (r *questionRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comments WHERE answer_id IN (SELECT id FROM answers WHERE question_id = ?)", id).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

// IncrementViews bumps the view counter unconditionally and reports
// how many rows matched, so callers can distinguish a missing question.
func (r *questionRepository) IncrementViews(id uint) (int64, error) {
	res := r.db.Model(&model.Question{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	return res.RowsAffected, res.Error
}
