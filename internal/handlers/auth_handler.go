package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gente-api/internal/config"
	"github.com/BruksfildServices01/gente-api/internal/httperr"
	"github.com/BruksfildServices01/gente-api/internal/models"
	"github.com/BruksfildServices01/gente-api/internal/session"
	"github.com/BruksfildServices01/gente-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config

	// checagem de DNS do domínio do e-mail; trocada nos testes
	emailDomainOK func(email string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:            db,
		config:        cfg,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register cria um usuário. O primeiro usuário do sistema vira admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailDomainOK(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "Já existe um usuário com este e-mail.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Active:       true,
	}

	if err := h.createUser(c.Request.Context(), &user); err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_exists", "Já existe um usuário com este e-mail.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userJSON(&user),
		"token": token,
	})
}

// createUser decide o perfil e grava o usuário na mesma transação.
// No postgres a tabela fica travada até o commit: só um cadastro
// simultâneo enxerga a tabela vazia e vira admin.
func (h *AuthHandler) createUser(ctx context.Context, user *models.User) error {
	return h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("LOCK TABLE usuarios IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
				return fmt.Errorf("locking usuarios: %w", err)
			}
		}

		var total int64
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return fmt.Errorf("counting users: %w", err)
		}

		user.Role = session.RoleOperator
		if total == 0 {
			user.Role = session.RoleAdmin
		}
		return tx.Create(user).Error
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	if !user.Active {
		httperr.Forbidden(c, "user_inactive", "Usuário inativo.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(&user),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	return session.Issue(
		h.config.JWTSecret,
		session.Session{UserID: user.ID, Role: user.Role},
		h.config.JWTExpiry,
		time.Now(),
	)
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":     u.ID,
		"nome":   u.Name,
		"email":  u.Email,
		"perfil": u.Role,
		"ativo":  u.Active,
	}
}
