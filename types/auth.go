package types

import "Collabenote/models"

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	// 管理后台登录入口，非管理员直接拒绝
	AdminLogin bool `json:"adminLogin"`
}

type AuthResponse struct {
	Token   string       `json:"token"`
	IsAdmin bool         `json:"isAdmin"`
	User    *models.User `json:"user"`
}
