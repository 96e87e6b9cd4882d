package service

import (
	"concurso_quiz_backend/internal/config"
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	TokenRepo *repository.TokenRepository
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, tokenRepo *repository.TokenRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Cfg:       cfg,
	}
}

// Register cria o usuário e já devolve um token de acesso, como o app espera.
func (s *AuthService) Register(user *model.User) (string, error) {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hashedPassword)
	user.PontuacaoTotal = 0

	if err := s.UserRepo.Create(user); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout coloca o token atual na lista de revogados até ele expirar.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		// Token inválido já não dá acesso; nada a revogar.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.TokenRepo.Revoke(ctx, token, ttl)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
