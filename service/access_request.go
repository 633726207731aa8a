package service

import (
	"Collabenote/models"
	"Collabenote/pkg/response"
	"Collabenote/pkg/snowflake"
	"context"
	"net/http"
	"time"
)

var _ IAccessRequestService = (*AccessRequestService)(nil)

type IAccessRequestService interface {
	CreateAccessRequest(ctx context.Context, userID, userEmail string, requested []models.NoteRef) (string, error)
}

// AccessRequestService 与直接购买平行的"申请访问"链路
type AccessRequestService struct {
	AccessDAO AccessRequestStore
}

func (s *AccessRequestService) CreateAccessRequest(ctx context.Context, userID, userEmail string, requested []models.NoteRef) (string, error) {
	if userID == "" {
		return "", response.NewError(http.StatusBadRequest, "missing user")
	}
	if len(requested) == 0 {
		return "", response.NewError(http.StatusBadRequest, "no requested notes")
	}

	now := time.Now()
	req := &models.AccessRequest{
		ID:             snowflake.GenIDString(),
		UserID:         userID,
		UserEmail:      userEmail,
		RequestedNotes: requested,
		Status:         models.AccessRequestStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.AccessDAO.Create(ctx, req); err != nil {
		return "", response.StoreError(err)
	}
	return req.ID, nil
}
