package service

import (
	"Collabenote/dao"
	"Collabenote/models"
	"Collabenote/types"
	"context"
	"errors"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
)

// 内存假实现，行为对齐 dao 包的 Firestore 实现（哨兵错误、CAS 语义）。

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User

	appendPendingCalls int
	incrEarningsCalls  int
	failAppendPending  bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) put(u *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.UID] = u
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[user.UID]; ok {
		return existing, nil
	}
	f.users[user.UID] = user
	return user, nil
}

func (f *fakeUserStore) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) ListAll(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) AppendPendingNotes(ctx context.Context, uid string, refs []models.NoteRef) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendPendingCalls++
	if f.failAppendPending {
		return 0, 0, errors.New("firestore unavailable")
	}
	u, ok := f.users[uid]
	if !ok {
		return 0, 0, dao.ErrNotFound
	}

	seen := make(map[[2]string]bool, len(u.PendingNotes))
	for _, p := range u.PendingNotes {
		seen[[2]string{p.Title, p.PaymentID}] = true
	}

	appended, skipped := 0, 0
	for _, r := range refs {
		key := [2]string{r.Title, r.PaymentID}
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true
		u.PendingNotes = append(u.PendingNotes, r)
		appended++
	}
	return appended, skipped, nil
}

func (f *fakeUserStore) AppendApprovedNotes(ctx context.Context, uid string, refs []models.NoteRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return dao.ErrNotFound
	}
	u.ApprovedNotes = append(u.ApprovedNotes, refs...)
	return nil
}

func (f *fakeUserStore) PromotePending(ctx context.Context, uid, title, driveLink string, approvedAt time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return 0, dao.ErrNotFound
	}

	remaining := u.PendingNotes[:0]
	moved := 0
	for _, p := range u.PendingNotes {
		if p.Title != title {
			remaining = append(remaining, p)
			continue
		}
		p.DriveLink = driveLink
		p.Status = models.RefStatusApproved
		p.ApprovedAt = approvedAt
		u.ApprovedNotes = append(u.ApprovedNotes, p)
		moved++
	}
	u.PendingNotes = remaining
	return moved, nil
}

func (f *fakeUserStore) IncrementEarnings(ctx context.Context, uid string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrEarningsCalls++
	u, ok := f.users[uid]
	if !ok {
		return dao.ErrNotFound
	}
	u.Earnings += amount
	return nil
}

func (f *fakeUserStore) AppendUploadedNote(ctx context.Context, uid, noteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return dao.ErrNotFound
	}
	u.UploadedNotes = append(u.UploadedNotes, noteID)
	return nil
}

func (f *fakeUserStore) UpdateEligibility(ctx context.Context, uid string, eligible bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return dao.ErrNotFound
	}
	u.IsEligible = eligible
	return nil
}

func (f *fakeUserStore) Watch(ctx context.Context, uid string, fn func(*models.User) error) error {
	u, err := f.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	return fn(u)
}

type fakeNoteStore struct {
	mu    sync.Mutex
	notes map[string]*models.Note
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: make(map[string]*models.Note)}
}

func (f *fakeNoteStore) put(n *models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[n.ID] = n
}

func (f *fakeNoteStore) Create(ctx context.Context, note *models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.notes[note.ID]; ok {
		return dao.ErrAlreadyExists
	}
	f.notes[note.ID] = note
	return nil
}

func (f *fakeNoteStore) GetByID(ctx context.Context, noteID string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return n, nil
}

func (f *fakeNoteStore) List(ctx context.Context, filter types.NoteFilter) ([]*models.Note, error) {
	status := filter.Status
	if status == "" {
		status = models.NoteStatusApproved
	}
	return f.ListByStatus(ctx, status)
}

func (f *fakeNoteStore) ListByStatus(ctx context.Context, status string) ([]*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Note, 0, len(f.notes))
	for _, n := range f.notes {
		if status == "" || n.Status == status {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteStore) ListByUploader(ctx context.Context, userID string) ([]*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Note, 0)
	for _, n := range f.notes {
		if n.UploadedBy == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteStore) Approve(ctx context.Context, noteID string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	if n.Status != models.NoteStatusPending {
		return nil, dao.ErrNotPending
	}
	now := time.Now()
	n.Status = models.NoteStatusApproved
	n.ApprovedAt = &now
	n.UpdatedAt = now
	return n, nil
}

func (f *fakeNoteStore) Deny(ctx context.Context, noteID, reason string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	if n.Status != models.NoteStatusPending {
		return nil, dao.ErrNotPending
	}
	now := time.Now()
	n.Status = models.NoteStatusDenied
	n.DenialReason = reason
	n.DeniedAt = &now
	n.UpdatedAt = now
	return n, nil
}

func (f *fakeNoteStore) UpdateFields(ctx context.Context, noteID string, updates []firestore.Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[noteID]
	if !ok {
		return dao.ErrNotFound
	}
	for _, u := range updates {
		switch u.Path {
		case "title":
			n.Title = u.Value.(string)
		case "subject":
			n.Subject = u.Value.(string)
		case "price":
			n.Price = u.Value.(int64)
		case "driveLink":
			n.DriveLink = u.Value.(string)
		}
	}
	return nil
}

type fakeAccessRequestStore struct {
	mu   sync.Mutex
	reqs map[string]*models.AccessRequest
}

func newFakeAccessRequestStore() *fakeAccessRequestStore {
	return &fakeAccessRequestStore{reqs: make(map[string]*models.AccessRequest)}
}

func (f *fakeAccessRequestStore) put(r *models.AccessRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs[r.ID] = r
}

func (f *fakeAccessRequestStore) Create(ctx context.Context, req *models.AccessRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reqs[req.ID]; ok {
		return dao.ErrAlreadyExists
	}
	f.reqs[req.ID] = req
	return nil
}

func (f *fakeAccessRequestStore) GetByID(ctx context.Context, requestID string) (*models.AccessRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reqs[requestID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return r, nil
}

func (f *fakeAccessRequestStore) ListAll(ctx context.Context) ([]*models.AccessRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.AccessRequest, 0, len(f.reqs))
	for _, r := range f.reqs {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAccessRequestStore) Approve(ctx context.Context, requestID string) (*models.AccessRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reqs[requestID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	if r.Status != models.AccessRequestStatusPending {
		return nil, dao.ErrNotPending
	}
	now := time.Now()
	r.Status = models.AccessRequestStatusApproved
	r.ApprovedAt = &now
	r.UpdatedAt = now
	return r, nil
}

func (f *fakeAccessRequestStore) Deny(ctx context.Context, requestID, reason string) (*models.AccessRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reqs[requestID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	if r.Status != models.AccessRequestStatusPending {
		return nil, dao.ErrNotPending
	}
	now := time.Now()
	r.Status = models.AccessRequestStatusDenied
	r.DenialReason = reason
	r.DeniedAt = &now
	r.UpdatedAt = now
	return r, nil
}

type fakeCredentialStore struct {
	mu    sync.Mutex
	creds map[string]*models.Credential
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{creds: make(map[string]*models.Credential)}
}

func (f *fakeCredentialStore) Create(ctx context.Context, cred *models.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.creds[cred.Email]; ok {
		return dao.ErrAlreadyExists
	}
	f.creds[cred.Email] = cred
	return nil
}

func (f *fakeCredentialStore) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.creds[email]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return c, nil
}

type fakeCartStore struct {
	mu         sync.Mutex
	carts      map[string]map[string]types.CartItem
	clearCalls int
	failClear  bool
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]map[string]types.CartItem)}
}

func (f *fakeCartStore) Add(ctx context.Context, uid string, item types.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.carts[uid] == nil {
		f.carts[uid] = make(map[string]types.CartItem)
	}
	f.carts[uid][item.Title] = item
	return nil
}

func (f *fakeCartStore) Remove(ctx context.Context, uid, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts[uid], title)
	return nil
}

func (f *fakeCartStore) Contains(ctx context.Context, uid, title string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.carts[uid][title]
	return ok, nil
}

func (f *fakeCartStore) List(ctx context.Context, uid string) ([]types.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.CartItem, 0, len(f.carts[uid]))
	for _, item := range f.carts[uid] {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeCartStore) Clear(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	if f.failClear {
		return errors.New("redis unavailable")
	}
	delete(f.carts, uid)
	return nil
}
