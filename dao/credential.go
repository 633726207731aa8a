package dao

import (
	"Collabenote/models"
	"context"
	"strings"

	"cloud.google.com/go/firestore"
)

type CredentialDAO struct {
	db *firestore.Client
}

func NewCredentialDAO(db *firestore.Client) *CredentialDAO {
	return &CredentialDAO{db: db}
}

func (d *CredentialDAO) col() *firestore.CollectionRef {
	return d.db.Collection(CollectionCredentials)
}

// Create 写入登录凭证，邮箱已注册返回 ErrAlreadyExists
func (d *CredentialDAO) Create(ctx context.Context, cred *models.Credential) error {
	_, err := d.col().Doc(strings.ToLower(cred.Email)).Create(ctx, cred)
	if isAlreadyExists(err) {
		return ErrAlreadyExists
	}
	return err
}

// GetByEmail 按邮箱查询凭证
func (d *CredentialDAO) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	snap, err := d.col().Doc(strings.ToLower(email)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var cred models.Credential
	if err := snap.DataTo(&cred); err != nil {
		return nil, err
	}
	return &cred, nil
}
