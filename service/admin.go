package service

import (
	"Collabenote/dao"
	"Collabenote/models"
	"Collabenote/pkg/log"
	"Collabenote/pkg/response"
	"Collabenote/types"
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	GetPendingNotes(ctx context.Context) ([]*models.Note, error)
	GetAllNotes(ctx context.Context) ([]*models.Note, error)
	ApproveNote(ctx context.Context, noteID string) error
	DenyNote(ctx context.Context, noteID, reason string) error
	UpdateNote(ctx context.Context, noteID string, req *types.UpdateNoteRequest) error
	UpdateUserEligibility(ctx context.Context, uid string, eligible bool) error

	GetAllAccessRequests(ctx context.Context) ([]*models.AccessRequest, error)
	ApproveAccessRequest(ctx context.Context, requestID string) error
	DenyAccessRequest(ctx context.Context, requestID, reason string) error
}

type AdminService struct {
	NoteDAO   NoteStore
	UserDAO   UserStore
	AccessDAO AccessRequestStore
}

func (s *AdminService) GetPendingNotes(ctx context.Context) ([]*models.Note, error) {
	notes, err := s.NoteDAO.ListByStatus(ctx, models.NoteStatusPending)
	if err != nil {
		return nil, response.StoreError(err)
	}
	return notes, nil
}

func (s *AdminService) GetAllNotes(ctx context.Context) ([]*models.Note, error) {
	notes, err := s.NoteDAO.ListByStatus(ctx, "")
	if err != nil {
		return nil, response.StoreError(err)
	}
	return notes, nil
}

// ApproveNote 审核通过一份笔记：
//  1. 事务内 CAS pending → approved，重复审批直接报 AlreadyProcessed
//  2. 扫描全部用户，把 pendingNotes 里 title 匹配的条目并发迁到 approvedNotes
//  3. 给上传者一次性入账固定分成
//
// 单个用户迁移失败只记日志不中断，CAS 保证分成不会重复入账。
func (s *AdminService) ApproveNote(ctx context.Context, noteID string) error {
	note, err := s.NoteDAO.Approve(ctx, noteID)
	if err != nil {
		return mapTransitionErr(err, "note not found")
	}

	approvedAt := time.Now()
	if note.ApprovedAt != nil {
		approvedAt = *note.ApprovedAt
	}

	users, err := s.UserDAO.ListAll(ctx)
	if err != nil {
		// 笔记状态已经翻过去了，购买者迁移留给下次人工处理
		log.L.Error("list users for approval fan-out failed",
			zap.String("noteId", noteID), zap.Error(err))
		return response.StoreError(err)
	}

	p := pool.New().WithContext(ctx)
	for _, user := range users {
		if !hasPendingTitle(user, note.Title) {
			continue
		}
		uid := user.UID
		p.Go(func(ctx context.Context) error {
			moved, err := s.UserDAO.PromotePending(ctx, uid, note.Title, note.DriveLink, approvedAt)
			if err != nil {
				log.L.Error("promote pending note failed",
					zap.String("uid", uid),
					zap.String("noteId", noteID),
					zap.String("title", note.Title),
					zap.Error(err))
				return nil
			}
			if moved > 0 {
				log.L.Info("pending note promoted",
					zap.String("uid", uid), zap.String("title", note.Title), zap.Int("moved", moved))
			}
			return nil
		})
	}
	_ = p.Wait()

	if note.UploadedBy != "" {
		if err := s.UserDAO.IncrementEarnings(ctx, note.UploadedBy, models.EarningsPerApprovedNote); err != nil {
			log.L.Error("credit uploader earnings failed",
				zap.String("uploader", note.UploadedBy),
				zap.String("noteId", noteID),
				zap.Error(err))
		}
	}

	return nil
}

// DenyNote 驳回笔记，记录原因。购买者 pendingNotes 里的条目不动。
func (s *AdminService) DenyNote(ctx context.Context, noteID, reason string) error {
	if _, err := s.NoteDAO.Deny(ctx, noteID, reason); err != nil {
		return mapTransitionErr(err, "note not found")
	}
	return nil
}

// UpdateNote 管理端部分字段更新
func (s *AdminService) UpdateNote(ctx context.Context, noteID string, req *types.UpdateNoteRequest) error {
	updates := make([]firestore.Update, 0, 7)
	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Subject != nil {
		updates = append(updates, firestore.Update{Path: "subject", Value: *req.Subject})
	}
	if req.Year != nil {
		updates = append(updates, firestore.Update{Path: "year", Value: *req.Year})
	}
	if req.Branch != nil {
		updates = append(updates, firestore.Update{Path: "branch", Value: *req.Branch})
	}
	if req.Semester != nil {
		updates = append(updates, firestore.Update{Path: "semester", Value: *req.Semester})
	}
	if req.Price != nil {
		updates = append(updates, firestore.Update{Path: "price", Value: *req.Price})
	}
	if req.DriveLink != nil {
		updates = append(updates, firestore.Update{Path: "driveLink", Value: *req.DriveLink})
	}

	if err := s.NoteDAO.UpdateFields(ctx, noteID, updates); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.NotFound("note not found")
		}
		return response.StoreError(err)
	}
	return nil
}

func (s *AdminService) UpdateUserEligibility(ctx context.Context, uid string, eligible bool) error {
	if err := s.UserDAO.UpdateEligibility(ctx, uid, eligible); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.NotFound("user not found")
		}
		return response.StoreError(err)
	}
	return nil
}

func (s *AdminService) GetAllAccessRequests(ctx context.Context) ([]*models.AccessRequest, error) {
	reqs, err := s.AccessDAO.ListAll(ctx)
	if err != nil {
		return nil, response.StoreError(err)
	}
	return reqs, nil
}

// ApproveAccessRequest 审批访问申请：CAS pending → approved 后，
// 把申请的笔记快照盖上 approved 戳追加进申请人的 approvedNotes。
// 购买链路的 pendingNotes 不在这条链路的职责里，保持互不触碰。
func (s *AdminService) ApproveAccessRequest(ctx context.Context, requestID string) error {
	req, err := s.AccessDAO.Approve(ctx, requestID)
	if err != nil {
		return mapTransitionErr(err, "access request not found")
	}

	approvedAt := time.Now()
	if req.ApprovedAt != nil {
		approvedAt = *req.ApprovedAt
	}

	refs := make([]models.NoteRef, 0, len(req.RequestedNotes))
	for _, r := range req.RequestedNotes {
		r.Status = models.RefStatusApproved
		r.ApprovedAt = approvedAt
		refs = append(refs, r)
	}
	if len(refs) == 0 {
		return nil
	}

	if err := s.UserDAO.AppendApprovedNotes(ctx, req.UserID, refs); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.NotFound("user not found")
		}
		return response.StoreError(err)
	}
	return nil
}

func (s *AdminService) DenyAccessRequest(ctx context.Context, requestID, reason string) error {
	if _, err := s.AccessDAO.Deny(ctx, requestID, reason); err != nil {
		return mapTransitionErr(err, "access request not found")
	}
	return nil
}

func hasPendingTitle(user *models.User, title string) bool {
	for _, p := range user.PendingNotes {
		if p.Title == title {
			return true
		}
	}
	return false
}

func mapTransitionErr(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, dao.ErrNotFound):
		return response.NotFound(notFoundMsg)
	case errors.Is(err, dao.ErrNotPending):
		return response.AlreadyProcessed("already processed")
	default:
		return response.StoreError(err)
	}
}
