package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unistack-app/unistack/internal/apperr"
	"github.com/unistack-app/unistack/internal/model"
	"github.com/unistack-app/unistack/internal/testutil"
)

func TestSubmitAnswer(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)

	answer, err := f.answers.Submit(question.ID, helper.ID, "try this")
	require.NoError(t, err)
	assert.Equal(t, question.ID, answer.QuestionID)
	assert.Equal(t, "helper@atu.ie", answer.Author)
	assert.False(t, answer.IsAccepted)

	var stored model.Question
	require.NoError(t, f.db.First(&stored, question.ID).Error)
	assert.EqualValues(t, 1, stored.AnswerCount)
}

func TestSubmitAnswer_Errors(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)

	_, err = f.answers.Submit(question.ID, 0, "body")
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))

	_, err = f.answers.Submit(99999, asker.ID, "body")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Question not found", apperr.MessageOf(err))

	_, err = f.answers.Submit(question.ID, asker.ID, "   ")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, "Answer body is required", apperr.MessageOf(err))
}

func TestAnswerCount_ConsistentAcrossSubmitAndDelete(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)

	// N = 3 submits, M = 2 deletes: counter must land on N - M.
	var ids []uint
	for _, body := range []string{"one", "two", "three"} {
		answer, err := f.answers.Submit(question.ID, helper.ID, body)
		require.NoError(t, err)
		ids = append(ids, answer.ID)
	}
	require.NoError(t, f.answers.Delete(ids[0], helper.ID))
	require.NoError(t, f.answers.Delete(ids[1], helper.ID))

	var stored model.Question
	require.NoError(t, f.db.First(&stored, question.ID).Error)
	assert.EqualValues(t, 1, stored.AnswerCount)
}

func TestAnswerCount_FlooredAtZero(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)
	answer, err := f.answers.Submit(question.ID, helper.ID, "body")
	require.NoError(t, err)

	// Force the drift the floor protects against.
	require.NoError(t, f.db.Model(&model.Question{}).Where("id = ?", question.ID).
		UpdateColumn("answer_count", 0).Error)

	require.NoError(t, f.answers.Delete(answer.ID, helper.ID))

	var stored model.Question
	require.NoError(t, f.db.First(&stored, question.ID).Error)
	assert.EqualValues(t, 0, stored.AnswerCount)
}

func TestUpdateAnswer_Guard(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)
	answer, err := f.answers.Submit(question.ID, helper.ID, "draft")
	require.NoError(t, err)

	updated, err := f.answers.Update(answer.ID, helper.ID, "final")
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Body)

	_, err = f.answers.Update(answer.ID, asker.ID, "hijack")
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	assert.Equal(t, "You can only edit your own answers", apperr.MessageOf(err))

	_, err = f.answers.Update(99999, helper.ID, "x")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Answer not found", apperr.MessageOf(err))
}

func TestDeleteAnswer_Guard(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)
	answer, err := f.answers.Submit(question.ID, helper.ID, "body")
	require.NoError(t, err)

	err = f.answers.Delete(answer.ID, asker.ID)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	assert.Equal(t, "You can only delete your own answers", apperr.MessageOf(err))
}

func TestAcceptAnswer_Exclusivity(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)
	first, err := f.answers.Submit(question.ID, helper.ID, "first")
	require.NoError(t, err)
	second, err := f.answers.Submit(question.ID, helper.ID, "second")
	require.NoError(t, err)

	accepted, err := f.answers.Accept(first.ID, asker.ID)
	require.NoError(t, err)
	assert.True(t, accepted.IsAccepted)

	// Accepting another answer unaccepts the previous one; at most
	// one answer per question is ever accepted.
	accepted, err = f.answers.Accept(second.ID, asker.ID)
	require.NoError(t, err)
	assert.True(t, accepted.IsAccepted)

	var acceptedCount int64
	require.NoError(t, f.db.Model(&model.Answer{}).
		Where("question_id = ? AND is_accepted = ?", question.ID, true).
		Count(&acceptedCount).Error)
	assert.EqualValues(t, 1, acceptedCount)

	var stored model.Answer
	require.NoError(t, f.db.First(&stored, second.ID).Error)
	assert.True(t, stored.IsAccepted)

	var storedQuestion model.Question
	require.NoError(t, f.db.First(&storedQuestion, question.ID).Error)
	assert.True(t, storedQuestion.HasAcceptedAnswer)
}

func TestAcceptAnswer_OnlyQuestionOwner(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)
	answer, err := f.answers.Submit(question.ID, helper.ID, "body")
	require.NoError(t, err)

	// The answer's own author cannot accept it.
	_, err = f.answers.Accept(answer.ID, helper.ID)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	assert.Equal(t, "Only the question owner can accept answers", apperr.MessageOf(err))

	_, err = f.answers.Accept(99999, asker.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Answer not found", apperr.MessageOf(err))
}

func TestListAnswers_AcceptedFirstThenOldest(t *testing.T) {
	f := newFixture(t)
	asker := testutil.SeedUser(t, f.db, "asker@atu.ie")
	helper := testutil.SeedUser(t, f.db, "helper@atu.ie")

	question, err := f.questions.Submit(asker.ID, "T", "B", "")
	require.NoError(t, err)
	first, err := f.answers.Submit(question.ID, helper.ID, "first")
	require.NoError(t, err)
	second, err := f.answers.Submit(question.ID, helper.ID, "second")
	require.NoError(t, err)
	third, err := f.answers.Submit(question.ID, helper.ID, "third")
	require.NoError(t, err)

	_, err = f.answers.Accept(second.ID, asker.ID)
	require.NoError(t, err)

	list, err := f.answers.List(question.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, third.ID, list[2].ID)
}
