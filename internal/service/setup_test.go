package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/unistack-app/unistack/config"
	"github.com/unistack-app/unistack/internal/model"
	"github.com/unistack-app/unistack/internal/repository"
	"github.com/unistack-app/unistack/internal/testutil"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	questions QuestionService
	answers   AnswerService
	comments  CommentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	guard := repository.NewOwnershipGuard(db)

	return &fixture{
		db:        db,
		questions: NewQuestionService(questionRepo, guard),
		answers:   NewAnswerService(answerRepo, questionRepo, guard),
		comments:  NewCommentService(commentRepo, answerRepo, guard),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Auth:  config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour},
		Forum: config.Forum{EmailDomain: "atu.ie"},
	}
}

func (f *fixture) seedQuestion(t *testing.T, userID uint, title string, createdAt time.Time) *model.Question {
	t.Helper()
	question := model.Question{UserID: userID, Title: title, Body: "body of " + title, Tags: "go,sql", CreatedAt: createdAt}
	require.NoError(t, f.db.Create(&question).Error)
	return &question
}
