package util

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

func bindAndRespond(t *testing.T, payload string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	var body registerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		BindError(c, err)
	}
	return w
}

func TestBindErrorFieldMessages(t *testing.T) {
	w := bindAndRespond(t, `{"name":"Ana","email":"não-é-email","password":"ab"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Os dados fornecidos são inválidos.", resp.Message)
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "password")
	assert.NotContains(t, resp.Errors, "name")
	require.NotEmpty(t, resp.Errors["email"])
	assert.Equal(t, "O campo email deve ser um e-mail válido.", resp.Errors["email"][0])
	assert.Equal(t, "O campo password deve ter no mínimo 4 caracteres.", resp.Errors["password"][0])
}

func TestBindErrorMissingFields(t *testing.T) {
	w := bindAndRespond(t, `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 3)
	assert.Equal(t, []string{"O campo name é obrigatório."}, resp.Errors["name"])
}

func TestBindErrorMalformedJSON(t *testing.T) {
	w := bindAndRespond(t, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
