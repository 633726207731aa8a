package dao

import (
	"Collabenote/models"
	"Collabenote/types"
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type NoteDAO struct {
	db *firestore.Client
}

func NewNoteDAO(db *firestore.Client) *NoteDAO {
	return &NoteDAO{db: db}
}

func (d *NoteDAO) col() *firestore.CollectionRef {
	return d.db.Collection(CollectionNotes)
}

// Create 创建笔记（status=pending 由 service 填好）
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	_, err := d.col().Doc(note.ID).Create(ctx, note)
	return err
}

// GetByID 按 ID 查询笔记
func (d *NoteDAO) GetByID(ctx context.Context, noteID string) (*models.Note, error) {
	snap, err := d.col().Doc(noteID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodeNote(snap)
}

// List 按筛选条件查询目录，createdAt 倒序。
// status 缺省时只取 approved，对普通用户只露出已上架的笔记。
func (d *NoteDAO) List(ctx context.Context, filter types.NoteFilter) ([]*models.Note, error) {
	q := d.col().Query

	if s := strings.TrimSpace(filter.Status); s != "" {
		q = q.Where("status", "==", s)
	} else {
		q = q.Where("status", "==", models.NoteStatusApproved)
	}
	if y := strings.TrimSpace(filter.Year); y != "" {
		q = q.Where("year", "==", y)
	}
	if b := strings.TrimSpace(filter.Branch); b != "" {
		q = q.Where("branch", "==", b)
	}
	if s := strings.TrimSpace(filter.Semester); s != "" {
		q = q.Where("semester", "==", s)
	}

	return d.queryNotes(ctx, q.OrderBy("createdAt", firestore.Desc))
}

// ListByStatus 管理端按状态查询（status 为空则全量）
func (d *NoteDAO) ListByStatus(ctx context.Context, status string) ([]*models.Note, error) {
	q := d.col().Query
	if status != "" {
		q = q.Where("status", "==", status)
	}
	return d.queryNotes(ctx, q.OrderBy("createdAt", firestore.Desc))
}

// ListByUploader 查询用户上传的笔记
func (d *NoteDAO) ListByUploader(ctx context.Context, userID string) ([]*models.Note, error) {
	q := d.col().Where("uploadedBy", "==", userID).OrderBy("createdAt", firestore.Desc)
	return d.queryNotes(ctx, q)
}

// Approve 审核通过：事务内 CAS pending → approved。
// 已处于终态时返回 ErrNotPending，保证重复审批不会二次生效。
func (d *NoteDAO) Approve(ctx context.Context, noteID string) (*models.Note, error) {
	return d.transition(ctx, noteID, func(note *models.Note, now time.Time) []firestore.Update {
		note.Status = models.NoteStatusApproved
		note.ApprovedAt = &now
		return []firestore.Update{
			{Path: "status", Value: models.NoteStatusApproved},
			{Path: "approvedAt", Value: now},
			{Path: "updatedAt", Value: now},
		}
	})
}

// Deny 审核驳回：事务内 CAS pending → denied，记录原因
func (d *NoteDAO) Deny(ctx context.Context, noteID, reason string) (*models.Note, error) {
	return d.transition(ctx, noteID, func(note *models.Note, now time.Time) []firestore.Update {
		note.Status = models.NoteStatusDenied
		note.DenialReason = reason
		note.DeniedAt = &now
		return []firestore.Update{
			{Path: "status", Value: models.NoteStatusDenied},
			{Path: "denialReason", Value: reason},
			{Path: "deniedAt", Value: now},
			{Path: "updatedAt", Value: now},
		}
	})
}

// UpdateFields 管理端部分字段更新
func (d *NoteDAO) UpdateFields(ctx context.Context, noteID string, updates []firestore.Update) error {
	if len(updates) == 0 {
		return nil
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})
	_, err := d.col().Doc(noteID).Update(ctx, updates)
	if IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (d *NoteDAO) transition(ctx context.Context, noteID string,
	apply func(note *models.Note, now time.Time) []firestore.Update) (*models.Note, error) {

	ref := d.col().Doc(noteID)
	var note *models.Note

	err := d.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		note, err = decodeNote(snap)
		if err != nil {
			return err
		}
		if note.Status != models.NoteStatusPending {
			return ErrNotPending
		}

		now := time.Now()
		updates := apply(note, now)
		note.UpdatedAt = now
		return tx.Update(ref, updates)
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (d *NoteDAO) queryNotes(ctx context.Context, q firestore.Query) ([]*models.Note, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	notes := make([]*models.Note, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		note, err := decodeNote(snap)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func decodeNote(snap *firestore.DocumentSnapshot) (*models.Note, error) {
	var note models.Note
	if err := snap.DataTo(&note); err != nil {
		return nil, err
	}
	note.ID = snap.Ref.ID
	return &note, nil
}
