package dao

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// 集合名
const (
	CollectionNotes          = "notes"
	CollectionUsers          = "users"
	CollectionAccessRequests = "accessRequests"
	CollectionCredentials    = "credentials"
)

var (
	// ErrNotFound 文档不存在
	ErrNotFound = errors.New("document not found")
	// ErrNotPending 状态机 CAS 失败：文档已处于终态
	ErrNotPending = errors.New("document is not pending")
	// ErrAlreadyExists 文档已存在
	ErrAlreadyExists = errors.New("document already exists")
)

// IsNotFound Firestore 的 NotFound 统一转成 ErrNotFound
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
