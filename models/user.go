package models

import "time"

// NoteRef 审核流转中内嵌在用户文档里的笔记快照
const (
	RefStatusPendingApproval = "pending_approval"
	RefStatusApproved        = "approved"
)

// DefaultPaymentID 未提供支付单号时的占位值
const DefaultPaymentID = "manual_payment"

// NoteRef 不是外键，是去范式化的笔记快照。
// ArrayRemove 按值精确匹配，所以这里所有字段都落库，不用 omitempty。
type NoteRef struct {
	Title       string    `firestore:"title" json:"title"`
	Subject     string    `firestore:"subject" json:"subject"`
	Price       int64     `firestore:"price" json:"price"`
	DriveLink   string    `firestore:"driveLink" json:"driveLink"`
	PaymentID   string    `firestore:"paymentId" json:"paymentId"`
	Status      string    `firestore:"status" json:"status"`
	PurchasedAt time.Time `firestore:"purchasedAt" json:"purchasedAt"`
	ApprovedAt  time.Time `firestore:"approvedAt" json:"approvedAt"`
}

// User 用户文档（users 集合，文档 ID 即 uid）
type User struct {
	UID           string    `firestore:"-" json:"uid"`
	DisplayName   string    `firestore:"displayName" json:"displayName"`
	Email         string    `firestore:"email" json:"email"`
	PhotoURL      string    `firestore:"photoURL" json:"photoURL"`
	PendingNotes  []NoteRef `firestore:"pendingNotes" json:"pendingNotes"`
	ApprovedNotes []NoteRef `firestore:"approvedNotes" json:"approvedNotes"`
	UploadedNotes []string  `firestore:"uploadedNotes" json:"uploadedNotes"`
	Earnings      int64     `firestore:"earnings" json:"earnings"`
	IsEligible    bool      `firestore:"isEligible" json:"isEligible"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
