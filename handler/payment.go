package handler

import (
	"Collabenote/config"
	"Collabenote/middleware"
	"Collabenote/pkg/context"
	"Collabenote/pkg/response"
	"Collabenote/service"
	"Collabenote/types"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Payment 支付桩：收一个自由文本支付单号，非空即认为已支付，
// 然后触发购买处理器落账。没有任何真实支付校验。
type Payment struct {
	Config          *config.Config
	CartService     service.ICartService
	PurchaseService service.IPurchaseService
}

func (h *Payment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/payment", authorize)
	g.POST("/confirm", context.Wrap(h.Confirm))
}

func (h *Payment) Confirm(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	if strings.TrimSpace(req.PaymentID) == "" {
		return response.NewError(http.StatusBadRequest, "Please enter your Payment ID.")
	}

	view, err := h.CartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	if len(view.Items) == 0 {
		return response.NewError(http.StatusBadRequest, "Your cart is empty. Please add some notes before payment.")
	}

	result, err := h.PurchaseService.ProcessPurchase(c.Request.Context(), userID, view.Items, req.PaymentID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
