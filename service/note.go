package service

import (
	"Collabenote/models"
	"Collabenote/pkg/log"
	"Collabenote/pkg/response"
	"Collabenote/pkg/snowflake"
	"Collabenote/types"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	CreateNote(ctx context.Context, userID string, req *types.CreateNoteRequest) (string, error)
	ListNotes(ctx context.Context, filter types.NoteFilter) ([]*models.Note, error)
	GetUserUploadedNotes(ctx context.Context, userID string) ([]*models.Note, error)
}

type NoteService struct {
	NoteDAO NoteStore
	UserDAO UserStore
}

// CreateNote 上传笔记，落库即 pending，等管理员审核
func (s *NoteService) CreateNote(ctx context.Context, userID string, req *types.CreateNoteRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", response.NewError(http.StatusBadRequest, "title is required")
	}

	now := time.Now()
	note := &models.Note{
		ID:         snowflake.GenIDString(),
		Title:      req.Title,
		Subject:    req.Subject,
		Year:       req.Year,
		Branch:     req.Branch,
		Semester:   req.Semester,
		Price:      req.Price,
		DriveLink:  req.DriveLink,
		UploadedBy: userID,
		Status:     models.NoteStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return "", response.StoreError(err)
	}

	// 上传记录挂到用户文档上，失败不影响主流程
	if err := s.UserDAO.AppendUploadedNote(ctx, userID, note.ID); err != nil {
		log.L.Warn("append uploaded note failed",
			zap.String("uid", userID), zap.String("noteId", note.ID), zap.Error(err))
	}

	return note.ID, nil
}

// ListNotes 目录查询，status 缺省只取 approved
func (s *NoteService) ListNotes(ctx context.Context, filter types.NoteFilter) ([]*models.Note, error) {
	notes, err := s.NoteDAO.List(ctx, filter)
	if err != nil {
		return nil, response.StoreError(err)
	}
	return notes, nil
}

// GetUserUploadedNotes 用户自己上传的笔记
func (s *NoteService) GetUserUploadedNotes(ctx context.Context, userID string) ([]*models.Note, error) {
	notes, err := s.NoteDAO.ListByUploader(ctx, userID)
	if err != nil {
		return nil, response.StoreError(err)
	}
	return notes, nil
}
