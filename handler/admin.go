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

// Admin 审核后台：待审笔记、访问申请的通过/驳回
type Admin struct {
	Config       *config.Config
	AdminService service.IAdminService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/admin", authorize, middleware.AdminAuth())

	g.GET("/notes/pending", context.Wrap(h.PendingNotes))
	g.GET("/notes", context.Wrap(h.AllNotes))
	g.POST("/notes/:id/approve", context.Wrap(h.ApproveNote))
	g.POST("/notes/:id/deny", context.Wrap(h.DenyNote))
	g.PATCH("/notes/:id", context.Wrap(h.UpdateNote))
	g.PATCH("/users/:uid/eligibility", context.Wrap(h.UpdateEligibility))

	g.GET("/access-requests", context.Wrap(h.AllAccessRequests))
	g.POST("/access-requests/:id/approve", context.Wrap(h.ApproveAccessRequest))
	g.POST("/access-requests/:id/deny", context.Wrap(h.DenyAccessRequest))
}

func (h *Admin) PendingNotes(c *gin.Context) error {
	notes, err := h.AdminService.GetPendingNotes(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, notes)
	return nil
}

func (h *Admin) AllNotes(c *gin.Context) error {
	notes, err := h.AdminService.GetAllNotes(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, notes)
	return nil
}

// ApproveNote 审核通过，同步迁移购买者的待审条目并给上传者入账
func (h *Admin) ApproveNote(c *gin.Context) error {
	if err := h.AdminService.ApproveNote(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) DenyNote(c *gin.Context) error {
	var req types.DenyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.AdminService.DenyNote(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) UpdateNote(c *gin.Context) error {
	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.AdminService.UpdateNote(c.Request.Context(), c.Param("id"), &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) UpdateEligibility(c *gin.Context) error {
	var req types.UpdateEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.AdminService.UpdateUserEligibility(c.Request.Context(), c.Param("uid"), req.IsEligible); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) AllAccessRequests(c *gin.Context) error {
	reqs, err := h.AdminService.GetAllAccessRequests(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, reqs)
	return nil
}

func (h *Admin) ApproveAccessRequest(c *gin.Context) error {
	if err := h.AdminService.ApproveAccessRequest(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) DenyAccessRequest(c *gin.Context) error {
	var req types.DenyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.AdminService.DenyAccessRequest(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
