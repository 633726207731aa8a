package service

import (
	"Collabenote/dao"
	"Collabenote/models"
	"Collabenote/pkg/response"
	"Collabenote/types"
	"context"
	"errors"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	GetNoteStatus(ctx context.Context, uid string) (*types.NoteStatusResp, error)
	Watch(ctx context.Context, uid string, fn func(*models.User) error) error
}

type UserService struct {
	UserDAO UserStore
}

func (s *UserService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.UserDAO.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, response.NotFound("user not found")
		}
		return nil, response.StoreError(err)
	}
	return user, nil
}

// GetNoteStatus 个人中心的待审/已通过列表
func (s *UserService) GetNoteStatus(ctx context.Context, uid string) (*types.NoteStatusResp, error) {
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	resp := &types.NoteStatusResp{
		PendingNotes:  user.PendingNotes,
		ApprovedNotes: user.ApprovedNotes,
		Earnings:      user.Earnings,
	}
	if resp.PendingNotes == nil {
		resp.PendingNotes = make([]models.NoteRef, 0)
	}
	if resp.ApprovedNotes == nil {
		resp.ApprovedNotes = make([]models.NoteRef, 0)
	}
	return resp, nil
}

// Watch 订阅用户文档变更（个人中心实时刷新）
func (s *UserService) Watch(ctx context.Context, uid string, fn func(*models.User) error) error {
	return s.UserDAO.Watch(ctx, uid, fn)
}
