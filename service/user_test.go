package service

import (
	"Collabenote/models"
	"Collabenote/pkg/response"
	"context"
	"testing"
)

func TestGetNoteStatus(t *testing.T) {
	users := newFakeUserStore()
	users.put(&models.User{
		UID:          "u1",
		PendingNotes: []models.NoteRef{{Title: "DSA Notes", Status: models.RefStatusPendingApproval}},
		Earnings:     15,
	})
	svc := &UserService{UserDAO: users}

	status, err := svc.GetNoteStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetNoteStatus: %v", err)
	}
	if len(status.PendingNotes) != 1 {
		t.Fatalf("pending = %d", len(status.PendingNotes))
	}
	// nil 切片要归一化成空数组，客户端不处理 null
	if status.ApprovedNotes == nil {
		t.Fatal("approvedNotes must not be nil")
	}
	if status.Earnings != 15 {
		t.Fatalf("earnings = %d", status.Earnings)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := &UserService{UserDAO: newFakeUserStore()}
	_, err := svc.GetProfile(context.Background(), "ghost")
	if !response.IsKind(err, response.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
