package models

import "time"

// 笔记审核状态
const (
	NoteStatusPending  = "pending"
	NoteStatusApproved = "approved"
	NoteStatusDenied   = "denied"
)

// EarningsPerApprovedNote 每份笔记审核通过后上传者的固定分成
const EarningsPerApprovedNote = 5

// Note 笔记文档（notes 集合）
type Note struct {
	ID           string     `firestore:"-" json:"id"`
	Title        string     `firestore:"title" json:"title"`
	Subject      string     `firestore:"subject" json:"subject"`
	Year         string     `firestore:"year" json:"year"`
	Branch       string     `firestore:"branch" json:"branch"`
	Semester     string     `firestore:"semester" json:"semester"`
	Price        int64      `firestore:"price" json:"price"`
	DriveLink    string     `firestore:"driveLink" json:"driveLink"`
	UploadedBy   string     `firestore:"uploadedBy" json:"uploadedBy"`
	Status       string     `firestore:"status" json:"status"`
	DenialReason string     `firestore:"denialReason,omitempty" json:"denialReason,omitempty"`
	CreatedAt    time.Time  `firestore:"createdAt" json:"createdAt"`
	ApprovedAt   *time.Time `firestore:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	DeniedAt     *time.Time `firestore:"deniedAt,omitempty" json:"deniedAt,omitempty"`
	UpdatedAt    time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
