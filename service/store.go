package service

import (
	"Collabenote/models"
	"Collabenote/types"
	"context"
	"time"

	"cloud.google.com/go/firestore"
)

// 文档库访问接口，dao 包提供 Firestore 实现，测试里用内存假实现。

type NoteStore interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, noteID string) (*models.Note, error)
	List(ctx context.Context, filter types.NoteFilter) ([]*models.Note, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Note, error)
	ListByUploader(ctx context.Context, userID string) ([]*models.Note, error)
	Approve(ctx context.Context, noteID string) (*models.Note, error)
	Deny(ctx context.Context, noteID, reason string) (*models.Note, error)
	UpdateFields(ctx context.Context, noteID string, updates []firestore.Update) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	AppendPendingNotes(ctx context.Context, uid string, refs []models.NoteRef) (appended, skipped int, err error)
	AppendApprovedNotes(ctx context.Context, uid string, refs []models.NoteRef) error
	PromotePending(ctx context.Context, uid, title, driveLink string, approvedAt time.Time) (int, error)
	IncrementEarnings(ctx context.Context, uid string, amount int64) error
	AppendUploadedNote(ctx context.Context, uid, noteID string) error
	UpdateEligibility(ctx context.Context, uid string, eligible bool) error
	Watch(ctx context.Context, uid string, fn func(*models.User) error) error
}

type AccessRequestStore interface {
	Create(ctx context.Context, req *models.AccessRequest) error
	GetByID(ctx context.Context, requestID string) (*models.AccessRequest, error)
	ListAll(ctx context.Context) ([]*models.AccessRequest, error)
	Approve(ctx context.Context, requestID string) (*models.AccessRequest, error)
	Deny(ctx context.Context, requestID, reason string) (*models.AccessRequest, error)
}

type CredentialStore interface {
	Create(ctx context.Context, cred *models.Credential) error
	GetByEmail(ctx context.Context, email string) (*models.Credential, error)
}

type CartStore interface {
	Add(ctx context.Context, uid string, item types.CartItem) error
	Remove(ctx context.Context, uid, title string) error
	Contains(ctx context.Context, uid, title string) (bool, error)
	List(ctx context.Context, uid string) ([]types.CartItem, error)
	Clear(ctx context.Context, uid string) error
}
