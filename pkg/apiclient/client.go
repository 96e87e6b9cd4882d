// Package apiclient é o cliente HTTP usado pelo jogador de terminal e pelos
// testes de integração. Implementa session.QuestionSource.
package apiclient

import (
	"bytes"
	"concurso_quiz_backend/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client conversa com a API autenticando via token Bearer. Sem retry: falha
// de rede sobe para o chamador decidir.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID             uint   `json:"id"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		PontuacaoTotal int    `json:"pontuacao_total"`
	} `json:"user"`
}

// Login autentica e guarda o token para as próximas chamadas.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return "", err
	}

	c.Token = resp.AccessToken
	return resp.User.Name, nil
}

// Logout revoga o token atual no servidor e o descarta localmente.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil); err != nil {
		return err
	}
	c.Token = ""
	return nil
}

func (c *Client) Random(ctx context.Context) ([]model.PlayQuestion, error) {
	var questions []model.PlayQuestion
	err := c.do(ctx, http.MethodGet, "/api/play/quizzes/random", nil, &questions)
	return questions, err
}

func (c *Client) ByCategory(ctx context.Context, categoryID uint) ([]model.PlayQuestion, error) {
	var questions []model.PlayQuestion
	path := fmt.Sprintf("/api/play/quizzes/by-category/%d", categoryID)
	err := c.do(ctx, http.MethodGet, path, nil, &questions)
	return questions, err
}

func (c *Client) ByID(ctx context.Context, quizID uint) (*model.PlayQuestion, error) {
	var question model.PlayQuestion
	path := fmt.Sprintf("/api/play/quizzes/%d", quizID)
	if err := c.do(ctx, http.MethodGet, path, nil, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.do(ctx, http.MethodGet, "/api/categorias", nil, &categories)
	return categories, err
}

// SubmitAnswer registra a resposta no servidor; o acerto volta calculado.
func (c *Client) SubmitAnswer(ctx context.Context, quizID uint, letter string) (bool, error) {
	body := map[string]interface{}{"quiz_id": quizID, "resposta_dada": letter}

	var answer model.UserAnswer
	if err := c.do(ctx, http.MethodPost, "/api/respostas_usuarios", body, &answer); err != nil {
		return false, err
	}
	return answer.Acertou, nil
}

func (c *Client) FavoriteQuiz(ctx context.Context, quizID uint) error {
	path := fmt.Sprintf("/api/favoritar-quiz/%d", quizID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) UnfavoriteQuiz(ctx context.Context, quizID uint) error {
	path := fmt.Sprintf("/api/desfavoritar-quiz/%d", quizID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) MyFavorites(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := c.do(ctx, http.MethodGet, "/api/me/favoritos/quizzes", nil, &quizzes)
	return quizzes, err
}

// APIError carrega o status e a mensagem devolvida pelo servidor.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
