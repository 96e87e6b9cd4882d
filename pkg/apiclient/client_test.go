package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-123",
			"user":         map[string]interface{}{"id": 1, "name": "Ana"},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	name, err := client.Login(context.Background(), "ana@example.com", "senha")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, "tok-123", client.Token)
}

func TestRandomSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/play/quizzes/random", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Write([]byte(`[{"id":1,"pergunta":"2+2?","alternativas":{"a":"3","b":"4","c":"5","d":"6"},"respostaCorreta":"b"}]`))
	}))
	defer server.Close()

	client := New(server.URL)
	client.Token = "tok-123"

	questions, err := client.Random(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "2+2?", questions[0].Pergunta)
	assert.Equal(t, "b", questions[0].RespostaCorreta)
	assert.Equal(t, "4", questions[0].Alternativas["b"])
}

func TestByCategoryNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Nenhuma pergunta para esta categoria"})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.ByCategory(context.Background(), 99)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Nenhuma pergunta para esta categoria", apiErr.Message)
}

func TestSubmitAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/respostas_usuarios", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 7, body["quiz_id"])
		assert.Equal(t, "b", body["resposta_dada"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"quiz_id":7,"resposta_dada":"b","acertou":true}`))
	}))
	defer server.Close()

	client := New(server.URL)
	correct, err := client.SubmitAnswer(context.Background(), 7, "b")
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestLogoutClearsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/logout", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "Logout successful"})
	}))
	defer server.Close()

	client := New(server.URL)
	client.Token = "tok-123"

	require.NoError(t, client.Logout(context.Background()))
	assert.Empty(t, client.Token)
}

func TestFavoriteCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cache, err := NewFavoriteCache(dir)
	require.NoError(t, err)

	require.NoError(t, cache.Add(3))
	require.NoError(t, cache.Add(1))
	require.NoError(t, cache.Add(3)) // repetido não duplica
	assert.True(t, cache.Has(3))
	assert.Equal(t, []uint{1, 3}, cache.List())

	require.NoError(t, cache.Remove(3))
	assert.False(t, cache.Has(3))

	// Reabrir do disco preserva o estado.
	reopened, err := NewFavoriteCache(dir)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, reopened.List())
}

func TestFavoriteCacheReplace(t *testing.T) {
	cache, err := NewFavoriteCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Add(9))
	require.NoError(t, cache.Replace([]uint{2, 4}))
	assert.Equal(t, []uint{2, 4}, cache.List())
	assert.False(t, cache.Has(9))
}
