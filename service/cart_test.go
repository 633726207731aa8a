package service

import (
	"Collabenote/pkg/response"
	"Collabenote/types"
	"context"
	"testing"
)

func TestCartRoundTrip(t *testing.T) {
	svc := &CartService{Cart: newFakeCartStore()}
	ctx := context.Background()

	items := []types.CartItem{
		{Title: "DSA Notes", Subject: "CS", Price: 49},
		{Title: "OS Notes", Subject: "CS", Price: 59, Quantity: 2},
	}
	for _, item := range items {
		if err := svc.AddToCart(ctx, "u1", item); err != nil {
			t.Fatalf("AddToCart(%s): %v", item.Title, err)
		}
	}

	ok, err := svc.IsInCart(ctx, "u1", "DSA Notes")
	if err != nil || !ok {
		t.Fatalf("IsInCart = %v, %v", ok, err)
	}

	view, err := svc.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("cart items = %d, want 2", len(view.Items))
	}
	// 49 + 59×2
	if view.TotalPrice != 167 {
		t.Fatalf("total = %d, want 167", view.TotalPrice)
	}

	if err := svc.RemoveFromCart(ctx, "u1", "DSA Notes"); err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}
	ok, _ = svc.IsInCart(ctx, "u1", "DSA Notes")
	if ok {
		t.Fatal("item should be gone after remove")
	}

	if err := svc.ClearCart(ctx, "u1"); err != nil {
		t.Fatalf("ClearCart: %v", err)
	}
	view, _ = svc.GetCart(ctx, "u1")
	if len(view.Items) != 0 || view.TotalPrice != 0 {
		t.Fatalf("cart not empty after clear: %+v", view)
	}
}

// 同 title 覆盖，不重复计数
func TestCartAddOverwrites(t *testing.T) {
	svc := &CartService{Cart: newFakeCartStore()}
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", types.CartItem{Title: "DSA Notes", Price: 49})
	svc.AddToCart(ctx, "u1", types.CartItem{Title: "DSA Notes", Price: 39})

	view, err := svc.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(view.Items))
	}
	if view.Items[0].Price != 39 {
		t.Fatalf("price = %d, want last write 39", view.Items[0].Price)
	}
}

func TestCartAddBlankTitle(t *testing.T) {
	svc := &CartService{Cart: newFakeCartStore()}
	err := svc.AddToCart(context.Background(), "u1", types.CartItem{Title: "   "})
	if !response.IsKind(err, response.KindBadRequest) {
		t.Fatalf("expected bad_request, got %v", err)
	}
}

// 不同用户的购物车互不可见
func TestCartIsolatedPerUser(t *testing.T) {
	svc := &CartService{Cart: newFakeCartStore()}
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", types.CartItem{Title: "DSA Notes", Price: 49})

	view, err := svc.GetCart(ctx, "u2")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("u2 sees u1's cart: %+v", view.Items)
	}
}
