package types

// CreateNoteRequest 上传笔记
type CreateNoteRequest struct {
	Title     string `json:"title" binding:"required"`
	Subject   string `json:"subject"`
	Year      string `json:"year"`
	Branch    string `json:"branch"`
	Semester  string `json:"semester"`
	Price     int64  `json:"price"`
	DriveLink string `json:"driveLink"`
}

type CreateNoteResponse struct {
	NoteID string `json:"noteId"`
}

// NoteFilter 笔记目录筛选条件，status 为空时默认只取 approved
type NoteFilter struct {
	Status   string `form:"status"`
	Year     string `form:"year"`
	Branch   string `form:"branch"`
	Semester string `form:"semester"`
}

type UploadResponse struct {
	Key    string `json:"key"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
