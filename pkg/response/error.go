package response

import (
	"errors"
	"net/http"
)

// Kind 业务错误分类
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindInvalidPurchaseData Kind = "invalid_purchase_data"
	KindPurchaseProcessing  Kind = "purchase_processing_error"
	KindAuthError           Kind = "auth_error"
	KindAlreadyProcessed    Kind = "already_processed"
	KindStoreError          Kind = "store_error"
	KindBadRequest          Kind = "bad_request"
)

type BizError struct {
	Kind Kind
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Kind: KindBadRequest,
		Code: code,
		Msg:  msg,
	}
}

func NotFound(msg string) *BizError {
	return &BizError{Kind: KindNotFound, Code: http.StatusNotFound, Msg: msg}
}

func InvalidPurchaseData(msg string) *BizError {
	return &BizError{Kind: KindInvalidPurchaseData, Code: http.StatusBadRequest, Msg: msg}
}

func PurchaseProcessing(msg string) *BizError {
	return &BizError{Kind: KindPurchaseProcessing, Code: http.StatusInternalServerError, Msg: msg}
}

func AuthError(msg string) *BizError {
	return &BizError{Kind: KindAuthError, Code: http.StatusUnauthorized, Msg: msg}
}

func AlreadyProcessed(msg string) *BizError {
	return &BizError{Kind: KindAlreadyProcessed, Code: http.StatusConflict, Msg: msg}
}

func StoreError(err error) *BizError {
	return &BizError{Kind: KindStoreError, Code: http.StatusInternalServerError, Msg: err.Error()}
}

// IsKind 判断错误是否属于指定分类
func IsKind(err error, kind Kind) bool {
	var be *BizError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
