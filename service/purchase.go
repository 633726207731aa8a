package service

import (
	"Collabenote/models"
	"Collabenote/pkg/log"
	"Collabenote/pkg/response"
	"Collabenote/types"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

var _ IPurchaseService = (*PurchaseService)(nil)

type IPurchaseService interface {
	ProcessPurchase(ctx context.Context, userID string, items []types.CartItem, paymentID string) (*types.PurchaseResult, error)
}

// PurchaseService 支付确认后的购买处理：
// 把本次购买的每一条目做成快照追加进用户的 pendingNotes，等管理员审批。
type PurchaseService struct {
	UserDAO UserStore
	Cart    CartStore
}

func (s *PurchaseService) ProcessPurchase(ctx context.Context, userID string, items []types.CartItem, paymentID string) (*types.PurchaseResult, error) {
	if userID == "" {
		return nil, response.InvalidPurchaseData("missing user for purchase")
	}
	if len(items) == 0 {
		return nil, response.InvalidPurchaseData("no purchased items")
	}

	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		paymentID = models.DefaultPaymentID
	}

	now := time.Now()
	refs := make([]models.NoteRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, models.NoteRef{
			Title:       item.Title,
			Subject:     item.Subject,
			Price:       item.Price,
			PaymentID:   paymentID,
			Status:      models.RefStatusPendingApproval,
			PurchasedAt: now,
		})
	}

	appended, skipped, err := s.UserDAO.AppendPendingNotes(ctx, userID, refs)
	if err != nil {
		// 不自动重试，留给用户走人工支持
		return nil, response.PurchaseProcessing("failed to record your purchase, please contact support")
	}

	// 购买落账后清空购物车，失败只记日志
	if err := s.Cart.Clear(ctx, userID); err != nil {
		log.L.Warn("clear cart after purchase failed", zap.String("uid", userID), zap.Error(err))
	}

	log.L.Info("purchase processed",
		zap.String("uid", userID),
		zap.String("paymentId", paymentID),
		zap.Int("appended", appended),
		zap.Int("skipped", skipped),
	)

	return &types.PurchaseResult{
		PaymentID: paymentID,
		Appended:  appended,
		Skipped:   skipped,
	}, nil
}
