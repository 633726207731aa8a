package types

import "Collabenote/models"

// CreateAccessRequestReq 用户主动申请访问若干笔记
type CreateAccessRequestReq struct {
	RequestedNotes []models.NoteRef `json:"requestedNotes" binding:"required"`
}

type CreateAccessRequestResp struct {
	RequestID string `json:"requestId"`
}

// DenyRequest 驳回时的可选原因
type DenyRequest struct {
	Reason string `json:"reason"`
}
