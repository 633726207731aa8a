package dao

import (
	"Collabenote/models"
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type UserDAO struct {
	db *firestore.Client
}

func NewUserDAO(db *firestore.Client) *UserDAO {
	return &UserDAO{db: db}
}

func (d *UserDAO) col() *firestore.CollectionRef {
	return d.db.Collection(CollectionUsers)
}

// Create 创建用户文档（已存在则原样返回，幂等）
func (d *UserDAO) Create(ctx context.Context, user *models.User) (*models.User, error) {
	_, err := d.col().Doc(user.UID).Create(ctx, user)
	if err != nil {
		if isAlreadyExists(err) {
			return d.GetByUID(ctx, user.UID)
		}
		return nil, err
	}
	return user, nil
}

// GetByUID 按 uid 查询用户
func (d *UserDAO) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	snap, err := d.col().Doc(uid).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodeUser(snap)
}

// ListAll 全量用户扫描（审批扇出用，用户量在千级以内）
func (d *UserDAO) ListAll(ctx context.Context) ([]*models.User, error) {
	iter := d.col().Documents(ctx)
	defer iter.Stop()

	users := make([]*models.User, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		user, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// AppendPendingNotes 购买成功后把快照批量追加进 pendingNotes。
// 事务内按 (title, paymentId) 去重，重复提交不会产生重复条目。
func (d *UserDAO) AppendPendingNotes(ctx context.Context, uid string, refs []models.NoteRef) (appended, skipped int, err error) {
	ref := d.col().Doc(uid)

	err = d.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		appended, skipped = 0, 0

		snap, err := tx.Get(ref)
		if err != nil {
			if IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		user, err := decodeUser(snap)
		if err != nil {
			return err
		}

		exists := make(map[[2]string]struct{}, len(user.PendingNotes))
		for _, p := range user.PendingNotes {
			exists[[2]string{p.Title, p.PaymentID}] = struct{}{}
		}

		fresh := make([]interface{}, 0, len(refs))
		for _, r := range refs {
			if _, ok := exists[[2]string{r.Title, r.PaymentID}]; ok {
				skipped++
				continue
			}
			fresh = append(fresh, r)
		}
		appended = len(fresh)
		if appended == 0 {
			return nil
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "pendingNotes", Value: firestore.ArrayUnion(fresh...)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		return 0, 0, err
	}
	return appended, skipped, nil
}

// AppendApprovedNotes 把快照批量追加进 approvedNotes（访问申请审批用）
func (d *UserDAO) AppendApprovedNotes(ctx context.Context, uid string, refs []models.NoteRef) error {
	values := make([]interface{}, 0, len(refs))
	for _, r := range refs {
		values = append(values, r)
	}
	_, err := d.col().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "approvedNotes", Value: firestore.ArrayUnion(values...)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// PromotePending 把 pendingNotes 里 title 匹配的条目迁到 approvedNotes。
// 读改写在同一个事务里完成，remove+add 对外表现为一次原子迁移。
// 返回迁移条数，没有匹配条目时为 0。
func (d *UserDAO) PromotePending(ctx context.Context, uid, title, driveLink string, approvedAt time.Time) (int, error) {
	ref := d.col().Doc(uid)
	moved := 0

	err := d.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		moved = 0

		snap, err := tx.Get(ref)
		if err != nil {
			if IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		user, err := decodeUser(snap)
		if err != nil {
			return err
		}

		removals := make([]interface{}, 0, 1)
		additions := make([]interface{}, 0, 1)
		for _, pending := range user.PendingNotes {
			if pending.Title != title {
				continue
			}
			approved := pending
			approved.DriveLink = driveLink
			approved.Status = models.RefStatusApproved
			approved.ApprovedAt = approvedAt

			// ArrayRemove 按值匹配，这里必须用读出来的原始条目
			removals = append(removals, pending)
			additions = append(additions, approved)
		}
		if len(removals) == 0 {
			return nil
		}
		moved = len(removals)

		return tx.Update(ref, []firestore.Update{
			{Path: "pendingNotes", Value: firestore.ArrayRemove(removals...)},
			{Path: "approvedNotes", Value: firestore.ArrayUnion(additions...)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		return 0, err
	}
	return moved, nil
}

// IncrementEarnings 上传者分成入账（字段级原子自增）
func (d *UserDAO) IncrementEarnings(ctx context.Context, uid string, amount int64) error {
	_, err := d.col().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "earnings", Value: firestore.Increment(amount)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// AppendUploadedNote 记录用户上传过的笔记 ID
func (d *UserDAO) AppendUploadedNote(ctx context.Context, uid, noteID string) error {
	_, err := d.col().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "uploadedNotes", Value: firestore.ArrayUnion(noteID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// UpdateEligibility 管理端更新资格位
func (d *UserDAO) UpdateEligibility(ctx context.Context, uid string, eligible bool) error {
	_, err := d.col().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "isEligible", Value: eligible},
		{Path: "updatedAt", Value: time.Now()},
	})
	if IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// Watch 订阅用户文档，每次变更把全量文档回调出去。
// 回调返回错误或 ctx 取消时结束。
func (d *UserDAO) Watch(ctx context.Context, uid string, fn func(*models.User) error) error {
	iter := d.col().Doc(uid).Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			return err
		}
		if !snap.Exists() {
			continue
		}
		user, err := decodeUser(snap)
		if err != nil {
			return err
		}
		if err := fn(user); err != nil {
			return err
		}
	}
}

func decodeUser(snap *firestore.DocumentSnapshot) (*models.User, error) {
	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	user.UID = snap.Ref.ID
	return &user, nil
}
