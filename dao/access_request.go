package dao

import (
	"Collabenote/models"
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type AccessRequestDAO struct {
	db *firestore.Client
}

func NewAccessRequestDAO(db *firestore.Client) *AccessRequestDAO {
	return &AccessRequestDAO{db: db}
}

func (d *AccessRequestDAO) col() *firestore.CollectionRef {
	return d.db.Collection(CollectionAccessRequests)
}

// Create 新建访问申请（status=pending）
func (d *AccessRequestDAO) Create(ctx context.Context, req *models.AccessRequest) error {
	_, err := d.col().Doc(req.ID).Create(ctx, req)
	return err
}

// GetByID 按 ID 查询访问申请
func (d *AccessRequestDAO) GetByID(ctx context.Context, requestID string) (*models.AccessRequest, error) {
	snap, err := d.col().Doc(requestID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodeAccessRequest(snap)
}

// ListAll 管理端全量列表，createdAt 倒序
func (d *AccessRequestDAO) ListAll(ctx context.Context) ([]*models.AccessRequest, error) {
	iter := d.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	reqs := make([]*models.AccessRequest, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		req, err := decodeAccessRequest(snap)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Approve 审批通过：事务内 CAS pending → approved
func (d *AccessRequestDAO) Approve(ctx context.Context, requestID string) (*models.AccessRequest, error) {
	return d.transition(ctx, requestID, func(req *models.AccessRequest, now time.Time) []firestore.Update {
		req.Status = models.AccessRequestStatusApproved
		req.ApprovedAt = &now
		return []firestore.Update{
			{Path: "status", Value: models.AccessRequestStatusApproved},
			{Path: "approvedAt", Value: now},
			{Path: "updatedAt", Value: now},
		}
	})
}

// Deny 审批驳回：事务内 CAS pending → denied
func (d *AccessRequestDAO) Deny(ctx context.Context, requestID, reason string) (*models.AccessRequest, error) {
	return d.transition(ctx, requestID, func(req *models.AccessRequest, now time.Time) []firestore.Update {
		req.Status = models.AccessRequestStatusDenied
		req.DenialReason = reason
		req.DeniedAt = &now
		return []firestore.Update{
			{Path: "status", Value: models.AccessRequestStatusDenied},
			{Path: "denialReason", Value: reason},
			{Path: "deniedAt", Value: now},
			{Path: "updatedAt", Value: now},
		}
	})
}

func (d *AccessRequestDAO) transition(ctx context.Context, requestID string,
	apply func(req *models.AccessRequest, now time.Time) []firestore.Update) (*models.AccessRequest, error) {

	ref := d.col().Doc(requestID)
	var req *models.AccessRequest

	err := d.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		req, err = decodeAccessRequest(snap)
		if err != nil {
			return err
		}
		if req.Status != models.AccessRequestStatusPending {
			return ErrNotPending
		}

		now := time.Now()
		updates := apply(req, now)
		req.UpdatedAt = now
		return tx.Update(ref, updates)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func decodeAccessRequest(snap *firestore.DocumentSnapshot) (*models.AccessRequest, error) {
	var req models.AccessRequest
	if err := snap.DataTo(&req); err != nil {
		return nil, err
	}
	req.ID = snap.Ref.ID
	return &req, nil
}
