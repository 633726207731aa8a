package service

import (
	"Collabenote/config"
	"Collabenote/dao"
	"Collabenote/models"
	"Collabenote/pkg/encrypt"
	"Collabenote/pkg/jwt"
	"Collabenote/pkg/response"
	"Collabenote/pkg/snowflake"
	"Collabenote/types"
	"context"
	"errors"
	"strings"
	"time"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
}

type AuthService struct {
	Config        *config.Config
	CredentialDAO CredentialStore
	UserDAO       UserStore
}

// Register 注册普通用户。管理员账号只能走配置，不允许注册。
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, response.AuthError("Invalid email address.")
	}
	if len(req.Password) < 6 {
		return nil, response.AuthError("Password should be at least 6 characters.")
	}
	if s.Config.Admin.IsAdminEmail(email) {
		return nil, response.AuthError("Admin accounts cannot be created through signup.")
	}

	now := time.Now()
	uid := snowflake.GenIDString()

	cred := &models.Credential{
		Email:        email,
		UID:          uid,
		PasswordHash: encrypt.HashPassword(req.Password),
		CreatedAt:    now,
	}
	if err := s.CredentialDAO.Create(ctx, cred); err != nil {
		if errors.Is(err, dao.ErrAlreadyExists) {
			return nil, response.AuthError("An account with this email already exists.")
		}
		return nil, response.StoreError(err)
	}

	user, err := s.UserDAO.Create(ctx, &models.User{
		UID:           uid,
		DisplayName:   req.DisplayName,
		Email:         email,
		PendingNotes:  make([]models.NoteRef, 0),
		ApprovedNotes: make([]models.NoteRef, 0),
		UploadedNotes: make([]string, 0),
		Earnings:      0,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, response.StoreError(err)
	}

	return s.issueToken(user, false)
}

// Login 登录。adminLogin 入口要求邮箱在管理员白名单内。
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	cred, err := s.CredentialDAO.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, response.AuthError("No account found with this email address.")
		}
		return nil, response.StoreError(err)
	}
	if !encrypt.VerifyPassword(cred.PasswordHash, req.Password) {
		return nil, response.AuthError("Incorrect password.")
	}

	// 管理员身份在服务端解析，进 JWT 声明
	isAdmin := s.Config.Admin.IsAdminEmail(email)
	if req.AdminLogin && !isAdmin {
		return nil, response.AuthError("Access denied. Admin privileges required.")
	}

	user, err := s.UserDAO.GetByUID(ctx, cred.UID)
	if err != nil {
		if !errors.Is(err, dao.ErrNotFound) {
			return nil, response.StoreError(err)
		}
		// 老账号没有用户文档时补一份（对齐端上首次登录建档的行为）
		now := time.Now()
		user, err = s.UserDAO.Create(ctx, &models.User{
			UID:           cred.UID,
			Email:         email,
			PendingNotes:  make([]models.NoteRef, 0),
			ApprovedNotes: make([]models.NoteRef, 0),
			UploadedNotes: make([]string, 0),
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return nil, response.StoreError(err)
		}
	}

	return s.issueToken(user, isAdmin)
}

func (s *AuthService) issueToken(user *models.User, isAdmin bool) (*types.AuthResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresIn) * time.Second
	if expire <= 0 {
		expire = 24 * time.Hour
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.UID, user.Email, isAdmin, "access", expire)
	if err != nil {
		return nil, response.AuthError("An error occurred during authentication.")
	}

	return &types.AuthResponse{
		Token:   token,
		IsAdmin: isAdmin,
		User:    user,
	}, nil
}
