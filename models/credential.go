package models

import "time"

// Credential 登录凭证文档（credentials 集合，文档 ID 即邮箱小写）
// 用户资料与凭证分开存，用户文档形状保持与端上契约一致。
type Credential struct {
	Email        string    `firestore:"email" json:"email"`
	UID          string    `firestore:"uid" json:"uid"`
	PasswordHash string    `firestore:"passwordHash" json:"-"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
}
