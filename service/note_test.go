package service

import (
	"Collabenote/models"
	"Collabenote/pkg/response"
	"Collabenote/types"
	"context"
	"testing"
)

func TestCreateNote(t *testing.T) {
	notes := newFakeNoteStore()
	users := newFakeUserStore()
	users.put(&models.User{UID: "u1"})
	svc := &NoteService{NoteDAO: notes, UserDAO: users}
	ctx := context.Background()

	id, err := svc.CreateNote(ctx, "u1", &types.CreateNoteRequest{
		Title:     "DSA Notes",
		Subject:   "CS",
		Price:     49,
		DriveLink: "https://drive.example.com/dsa",
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	n, err := notes.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("stored note: %v", err)
	}
	if n.Status != models.NoteStatusPending {
		t.Fatalf("new note status = %s, want pending", n.Status)
	}
	if n.UploadedBy != "u1" {
		t.Fatalf("uploadedBy = %s", n.UploadedBy)
	}

	u, _ := users.GetByUID(ctx, "u1")
	if len(u.UploadedNotes) != 1 || u.UploadedNotes[0] != id {
		t.Fatalf("uploadedNotes = %v", u.UploadedNotes)
	}
}

func TestCreateNoteBlankTitle(t *testing.T) {
	svc := &NoteService{NoteDAO: newFakeNoteStore(), UserDAO: newFakeUserStore()}
	_, err := svc.CreateNote(context.Background(), "u1", &types.CreateNoteRequest{Title: "  "})
	if !response.IsKind(err, response.KindBadRequest) {
		t.Fatalf("expected bad_request, got %v", err)
	}
}

// 用户文档挂载失败不影响笔记创建
func TestCreateNoteUserDocMissing(t *testing.T) {
	notes := newFakeNoteStore()
	svc := &NoteService{NoteDAO: notes, UserDAO: newFakeUserStore()}

	id, err := svc.CreateNote(context.Background(), "ghost", &types.CreateNoteRequest{Title: "x"})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if _, err := notes.GetByID(context.Background(), id); err != nil {
		t.Fatalf("note not stored: %v", err)
	}
}

// 目录查询缺省只出 approved
func TestListNotesDefaultsToApproved(t *testing.T) {
	notes := newFakeNoteStore()
	notes.put(&models.Note{ID: "n1", Status: models.NoteStatusApproved})
	notes.put(&models.Note{ID: "n2", Status: models.NoteStatusPending})
	notes.put(&models.Note{ID: "n3", Status: models.NoteStatusDenied})
	svc := &NoteService{NoteDAO: notes, UserDAO: newFakeUserStore()}

	got, err := svc.ListNotes(context.Background(), types.NoteFilter{})
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n1" {
		t.Fatalf("catalog = %+v, want only approved", got)
	}
}
