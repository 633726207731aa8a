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

type AccessRequest struct {
	Config               *config.Config
	AccessRequestService service.IAccessRequestService
}

func (h *AccessRequest) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/access-requests", authorize)
	g.POST("", context.Wrap(h.Create))
}

// Create 提交访问申请（与购物车购买平行的链路）
func (h *AccessRequest) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	email, err := context.GetEmail(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateAccessRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	requestID, err := h.AccessRequestService.CreateAccessRequest(c.Request.Context(), userID, email, req.RequestedNotes)
	if err != nil {
		return err
	}
	response.Success(c, types.CreateAccessRequestResp{RequestID: requestID})
	return nil
}
