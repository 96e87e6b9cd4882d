package service

import (
	"concurso_quiz_backend/internal/config"
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "segredo-de-teste-com-32-caracteres!"
	cfg.JWT.ExpireTime = time.Hour

	return NewAuthService(repository.NewUserRepository(db), nil, cfg)
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := &model.User{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "segredo",
	}

	token, err := svc.Register(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "segredo", user.Password, "senha deve ser armazenada com hash")

	t.Run("login com credenciais corretas", func(t *testing.T) {
		token, logged, err := svc.Login("ana@example.com", "segredo")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, logged.ID)

		claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("senha errada", func(t *testing.T) {
		_, _, err := svc.Login("ana@example.com", "outra")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("e-mail desconhecido", func(t *testing.T) {
		_, _, err := svc.Login("ninguem@example.com", "segredo")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&model.User{Name: "Ana", Email: "ana@example.com", Password: "segredo"})
	require.NoError(t, err)

	_, err = svc.Register(&model.User{Name: "Outra Ana", Email: "ana@example.com", Password: "segredo2"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}
