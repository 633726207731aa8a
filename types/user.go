package types

import "Collabenote/models"

// NoteStatusResp 个人中心的待审/已通过列表
type NoteStatusResp struct {
	PendingNotes  []models.NoteRef `json:"pendingNotes"`
	ApprovedNotes []models.NoteRef `json:"approvedNotes"`
	Earnings      int64            `json:"earnings"`
}

type UpdateEligibilityRequest struct {
	IsEligible bool `json:"isEligible"`
}

// UpdateNoteRequest 管理端部分字段更新（nil 表示不更新）
type UpdateNoteRequest struct {
	Title     *string `json:"title"`
	Subject   *string `json:"subject"`
	Year      *string `json:"year"`
	Branch    *string `json:"branch"`
	Semester  *string `json:"semester"`
	Price     *int64  `json:"price"`
	DriveLink *string `json:"driveLink"`
}
