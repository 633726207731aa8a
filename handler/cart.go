package handler

import (
	"Collabenote/config"
	"Collabenote/middleware"
	"Collabenote/pkg/context"
	"Collabenote/pkg/response"
	"Collabenote/service"
	"Collabenote/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Cart struct {
	Config      *config.Config
	CartService service.ICartService
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/cart", authorize)
	g.GET("", context.Wrap(h.GetCart))
	g.POST("/items", context.Wrap(h.AddItem))
	g.DELETE("/items/:title", context.Wrap(h.RemoveItem))
	g.DELETE("", context.Wrap(h.Clear))
}

func (h *Cart) GetCart(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	view, err := h.CartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

// AddItem 同 title 覆盖写入
func (h *Cart) AddItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var item types.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.CartService.AddToCart(c.Request.Context(), userID, item); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Cart) RemoveItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	if err := h.CartService.RemoveFromCart(c.Request.Context(), userID, c.Param("title")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Cart) Clear(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	if err := h.CartService.ClearCart(c.Request.Context(), userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
