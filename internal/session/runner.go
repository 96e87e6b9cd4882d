// Package session executa uma rodada de quiz no cliente: carrega um lote
// fixo de questões, registra uma resposta por questão e acumula o placar.
package session

import (
	"concurso_quiz_backend/internal/model"
	"context"
	"errors"
	"strings"
	"sync"
)

// State é o estado da sessão. Não há transições para trás: uma questão
// respondida nunca volta a ficar pendente.
type State int

const (
	Idle State = iota
	Loading
	InProgress
	Terminal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case InProgress:
		return "in_progress"
	case Terminal:
		return "terminal"
	}
	return "unknown"
}

var (
	ErrSessionActive     = errors.New("sessão já em andamento")
	ErrSessionNotRunning = errors.New("sessão não está em andamento")
	ErrAlreadyAnswered   = errors.New("questão já respondida")
	ErrEmptyBatch        = errors.New("nenhuma questão disponível")
)

// QuestionSource fornece os lotes de questões; em produção é o backend HTTP,
// nos testes um stub em memória.
type QuestionSource interface {
	Random(ctx context.Context) ([]model.PlayQuestion, error)
	ByCategory(ctx context.Context, categoryID uint) ([]model.PlayQuestion, error)
	ByID(ctx context.Context, quizID uint) (*model.PlayQuestion, error)
}

// Mode escolhe como o lote inicial é buscado.
type Mode struct {
	kind       modeKind
	categoryID uint
	quizID     uint
}

type modeKind int

const (
	modeRandom modeKind = iota
	modeByCategory
	modeByID
)

func RandomMode() Mode { return Mode{kind: modeRandom} }

func ByCategoryMode(categoryID uint) Mode {
	return Mode{kind: modeByCategory, categoryID: categoryID}
}

func ByIDMode(quizID uint) Mode { return Mode{kind: modeByID, quizID: quizID} }

// Tally é o resultado final exposto quando a sessão termina.
type Tally struct {
	CorrectCount   int
	TotalQuestions int
}

// Runner percorre um lote de questões na ordem em que o servidor as devolveu.
// Uma sessão atende um único usuário, mas o mutex protege contra callbacks de
// UI concorrentes.
type Runner struct {
	source QuestionSource

	mu        sync.Mutex
	state     State
	questions []model.PlayQuestion
	index     int
	answered  []bool
	correct   int
}

func NewRunner(source QuestionSource) *Runner {
	return &Runner{source: source, state: Idle}
}

func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start busca o lote e entra em InProgress na primeira questão. Falha de rede
// ou lote vazio devolvem a sessão para Idle; nenhum estado parcial sobra.
func (r *Runner) Start(ctx context.Context, mode Mode) error {
	r.mu.Lock()
	if r.state != Idle {
		r.mu.Unlock()
		return ErrSessionActive
	}
	r.state = Loading
	r.mu.Unlock()

	questions, err := r.fetch(ctx, mode)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.state = Idle
		return err
	}
	if len(questions) == 0 {
		r.state = Idle
		return ErrEmptyBatch
	}

	r.questions = questions
	r.index = 0
	r.answered = make([]bool, len(questions))
	r.correct = 0
	r.state = InProgress
	return nil
}

func (r *Runner) fetch(ctx context.Context, mode Mode) ([]model.PlayQuestion, error) {
	switch mode.kind {
	case modeByCategory:
		return r.source.ByCategory(ctx, mode.categoryID)
	case modeByID:
		q, err := r.source.ByID(ctx, mode.quizID)
		if err != nil {
			return nil, err
		}
		return []model.PlayQuestion{*q}, nil
	default:
		return r.source.Random(ctx)
	}
}

// Current devolve a questão atual, ou nil fora de InProgress.
func (r *Runner) Current() *model.PlayQuestion {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != InProgress {
		return nil
	}
	q := r.questions[r.index]
	return &q
}

// Answer registra a letra para a questão atual e diz se acertou. A primeira
// resposta é definitiva: chamadas repetidas para a mesma questão devolvem
// ErrAlreadyAnswered sem alterar o placar.
func (r *Runner) Answer(letter string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != InProgress {
		return false, ErrSessionNotRunning
	}
	if r.answered[r.index] {
		return false, ErrAlreadyAnswered
	}

	r.answered[r.index] = true
	correct := strings.EqualFold(letter, r.questions[r.index].RespostaCorreta)
	if correct {
		r.correct++
	}
	return correct, nil
}

// Advance passa para a próxima questão; na última, encerra a sessão e devolve
// o placar final.
func (r *Runner) Advance() (done bool, tally Tally, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != InProgress {
		return false, Tally{}, ErrSessionNotRunning
	}

	r.index++
	if r.index < len(r.questions) {
		return false, Tally{}, nil
	}

	r.state = Terminal
	return true, Tally{CorrectCount: r.correct, TotalQuestions: len(r.questions)}, nil
}

// Tally devolve o placar acumulado até o momento.
func (r *Runner) Tally() Tally {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Tally{CorrectCount: r.correct, TotalQuestions: len(r.questions)}
}

// Reset descarta todo o estado. Só é válido antes de Start ou após Terminal.
func (r *Runner) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Loading || r.state == InProgress {
		return ErrSessionActive
	}

	r.questions = nil
	r.index = 0
	r.answered = nil
	r.correct = 0
	r.state = Idle
	return nil
}
