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

type Note struct {
	Config      *config.Config
	NoteService service.INoteService
	OssService  service.IOssService
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/notes")
	g.GET("", context.Wrap(h.ListNotes))
	g.POST("", authorize, context.Wrap(h.CreateNote))
	g.GET("/mine", authorize, context.Wrap(h.MyUploads))
	g.POST("/upload", authorize, context.Wrap(h.UploadPreview))
}

// ListNotes 目录查询，不带 status 时只返回已上架的笔记
func (h *Note) ListNotes(c *gin.Context) error {
	var filter types.NoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	notes, err := h.NoteService.ListNotes(c.Request.Context(), filter)
	if err != nil {
		return err
	}
	response.Success(c, notes)
	return nil
}

// CreateNote 上传笔记
func (h *Note) CreateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	noteID, err := h.NoteService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, types.CreateNoteResponse{NoteID: noteID})
	return nil
}

// MyUploads 自己上传的笔记
func (h *Note) MyUploads(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	notes, err := h.NoteService.GetUserUploadedNotes(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, notes)
	return nil
}

// UploadPreview 上传预览图
func (h *Note) UploadPreview(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.OssService.UploadPreview(c.Request.Context(), header)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}
