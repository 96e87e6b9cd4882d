package session

import (
	"concurso_quiz_backend/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	questions []model.PlayQuestion
	err       error
}

func (s *stubSource) Random(ctx context.Context) ([]model.PlayQuestion, error) {
	return s.questions, s.err
}

func (s *stubSource) ByCategory(ctx context.Context, categoryID uint) ([]model.PlayQuestion, error) {
	return s.questions, s.err
}

func (s *stubSource) ByID(ctx context.Context, quizID uint) (*model.PlayQuestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.questions[0], nil
}

func question(id uint, correct string) model.PlayQuestion {
	return model.PlayQuestion{
		ID:       id,
		Pergunta: "pergunta",
		Alternativas: map[string]string{
			"a": "A", "b": "B", "c": "C", "d": "D",
		},
		RespostaCorreta: correct,
	}
}

func TestRunnerFullSession(t *testing.T) {
	source := &stubSource{questions: []model.PlayQuestion{
		question(1, "b"),
		question(2, "a"),
	}}
	runner := NewRunner(source)

	require.NoError(t, runner.Start(context.Background(), RandomMode()))
	assert.Equal(t, InProgress, runner.State())

	// Lote [b, a], respostas [b, c]: placar final 1/2.
	correct, err := runner.Answer("b")
	require.NoError(t, err)
	assert.True(t, correct)

	done, _, err := runner.Advance()
	require.NoError(t, err)
	assert.False(t, done)

	correct, err = runner.Answer("c")
	require.NoError(t, err)
	assert.False(t, correct)

	done, tally, err := runner.Advance()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, Tally{CorrectCount: 1, TotalQuestions: 2}, tally)
	assert.Equal(t, Terminal, runner.State())
}

func TestRunnerAnswerIsCaseInsensitive(t *testing.T) {
	runner := NewRunner(&stubSource{questions: []model.PlayQuestion{question(1, "b")}})
	require.NoError(t, runner.Start(context.Background(), RandomMode()))

	correct, err := runner.Answer("B")
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestRunnerDuplicateAnswerRejected(t *testing.T) {
	runner := NewRunner(&stubSource{questions: []model.PlayQuestion{question(1, "a")}})
	require.NoError(t, runner.Start(context.Background(), RandomMode()))

	correct, err := runner.Answer("b")
	require.NoError(t, err)
	assert.False(t, correct)

	// A primeira resposta é definitiva; a segunda não mexe no placar.
	_, err = runner.Answer("a")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	done, tally, err := runner.Advance()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 0, tally.CorrectCount)
}

func TestRunnerPreservesBatchOrder(t *testing.T) {
	source := &stubSource{questions: []model.PlayQuestion{
		question(10, "a"),
		question(20, "b"),
		question(30, "c"),
	}}
	runner := NewRunner(source)
	require.NoError(t, runner.Start(context.Background(), ByCategoryMode(1)))

	var seen []uint
	for {
		q := runner.Current()
		require.NotNil(t, q)
		seen = append(seen, q.ID)

		_, err := runner.Answer("a")
		require.NoError(t, err)

		done, _, err := runner.Advance()
		require.NoError(t, err)
		if done {
			break
		}
	}

	assert.Equal(t, []uint{10, 20, 30}, seen)
}

func TestRunnerEmptyBatch(t *testing.T) {
	runner := NewRunner(&stubSource{questions: nil})

	err := runner.Start(context.Background(), RandomMode())
	assert.ErrorIs(t, err, ErrEmptyBatch)
	assert.Equal(t, Idle, runner.State())
}

func TestRunnerFetchFailureReturnsToIdle(t *testing.T) {
	fetchErr := errors.New("falha de rede")
	runner := NewRunner(&stubSource{err: fetchErr})

	err := runner.Start(context.Background(), RandomMode())
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, Idle, runner.State())

	// Nenhum estado parcial sobra; dá para começar de novo.
	assert.Nil(t, runner.Current())
	assert.Equal(t, Tally{}, runner.Tally())
}

func TestRunnerByIDMode(t *testing.T) {
	runner := NewRunner(&stubSource{questions: []model.PlayQuestion{question(7, "d")}})
	require.NoError(t, runner.Start(context.Background(), ByIDMode(7)))

	q := runner.Current()
	require.NotNil(t, q)
	assert.Equal(t, uint(7), q.ID)
	assert.Equal(t, 1, runner.Tally().TotalQuestions)
}

func TestRunnerStartWhileActive(t *testing.T) {
	runner := NewRunner(&stubSource{questions: []model.PlayQuestion{question(1, "a")}})
	require.NoError(t, runner.Start(context.Background(), RandomMode()))

	err := runner.Start(context.Background(), RandomMode())
	assert.ErrorIs(t, err, ErrSessionActive)
}

func TestRunnerResetAfterTerminal(t *testing.T) {
	runner := NewRunner(&stubSource{questions: []model.PlayQuestion{question(1, "a")}})
	require.NoError(t, runner.Start(context.Background(), RandomMode()))

	assert.ErrorIs(t, runner.Reset(), ErrSessionActive)

	_, err := runner.Answer("a")
	require.NoError(t, err)
	done, _, err := runner.Advance()
	require.NoError(t, err)
	require.True(t, done)

	require.NoError(t, runner.Reset())
	assert.Equal(t, Idle, runner.State())
	require.NoError(t, runner.Start(context.Background(), RandomMode()))
}

func TestRunnerAnswerOutsideSession(t *testing.T) {
	runner := NewRunner(&stubSource{})

	_, err := runner.Answer("a")
	assert.ErrorIs(t, err, ErrSessionNotRunning)

	_, _, err = runner.Advance()
	assert.ErrorIs(t, err, ErrSessionNotRunning)
}
