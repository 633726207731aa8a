package models

import "time"

// 访问申请状态（与笔记审核状态字面量保持一致，统一用 denied）
const (
	AccessRequestStatusPending  = "pending"
	AccessRequestStatusApproved = "approved"
	AccessRequestStatusDenied   = "denied"
)

// AccessRequest 访问申请文档（accessRequests 集合）
// 与购买流程平行的一条审批链路，approve/deny 后即终态。
type AccessRequest struct {
	ID             string     `firestore:"-" json:"id"`
	UserID         string     `firestore:"userId" json:"userId"`
	UserEmail      string     `firestore:"userEmail" json:"userEmail"`
	RequestedNotes []NoteRef  `firestore:"requestedNotes" json:"requestedNotes"`
	Status         string     `firestore:"status" json:"status"`
	DenialReason   string     `firestore:"denialReason,omitempty" json:"denialReason,omitempty"`
	CreatedAt      time.Time  `firestore:"createdAt" json:"createdAt"`
	ApprovedAt     *time.Time `firestore:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	DeniedAt       *time.Time `firestore:"deniedAt,omitempty" json:"deniedAt,omitempty"`
	UpdatedAt      time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
