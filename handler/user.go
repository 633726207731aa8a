package handler

import (
	"Collabenote/config"
	"Collabenote/middleware"
	"Collabenote/pkg/context"
	"Collabenote/pkg/response"
	"Collabenote/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/user", authorize)
	g.GET("/profile", context.Wrap(h.Profile))
	g.GET("/notes-status", context.Wrap(h.NoteStatus))
	g.GET("/watch", context.Wrap(h.Watch))
}

func (h *User) Profile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

// NoteStatus 个人中心的待审/已通过列表
func (h *User) NoteStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	status, err := h.UserService.GetNoteStatus(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, status)
	return nil
}
