package service

import (
	"Collabenote/pkg/response"
	"Collabenote/types"
	"context"
	"net/http"
	"strings"
)

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	AddToCart(ctx context.Context, uid string, item types.CartItem) error
	RemoveFromCart(ctx context.Context, uid, title string) error
	IsInCart(ctx context.Context, uid, title string) (bool, error)
	GetCart(ctx context.Context, uid string) (*types.CartView, error)
	ClearCart(ctx context.Context, uid string) error
}

type CartService struct {
	Cart CartStore
}

// AddToCart 同 title 条目直接覆盖
func (s *CartService) AddToCart(ctx context.Context, uid string, item types.CartItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return response.NewError(http.StatusBadRequest, "cart item title is required")
	}
	if err := s.Cart.Add(ctx, uid, item); err != nil {
		return response.StoreError(err)
	}
	return nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, uid, title string) error {
	if err := s.Cart.Remove(ctx, uid, title); err != nil {
		return response.StoreError(err)
	}
	return nil
}

func (s *CartService) IsInCart(ctx context.Context, uid, title string) (bool, error) {
	ok, err := s.Cart.Contains(ctx, uid, title)
	if err != nil {
		return false, response.StoreError(err)
	}
	return ok, nil
}

// GetCart 列表 + 合计金额
func (s *CartService) GetCart(ctx context.Context, uid string) (*types.CartView, error) {
	items, err := s.Cart.List(ctx, uid)
	if err != nil {
		return nil, response.StoreError(err)
	}
	return &types.CartView{
		Items:      items,
		TotalPrice: types.CartTotal(items),
	}, nil
}

func (s *CartService) ClearCart(ctx context.Context, uid string) error {
	if err := s.Cart.Clear(ctx, uid); err != nil {
		return response.StoreError(err)
	}
	return nil
}
