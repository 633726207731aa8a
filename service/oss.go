package service

import (
	"Collabenote/config"
	"Collabenote/pkg/snowflake"
	"Collabenote/types"
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	_ "golang.org/x/image/webp"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadReader 上传流（HTTP / 表单上传）
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// UploadPreview 上传笔记预览图，返回外链
	UploadPreview(ctx context.Context, header *multipart.FileHeader) (*types.UploadResponse, error)
}

type OssService struct {
	Client     *oss.Client
	BucketName string
	PublicHost string
}

func NewOssService(client *oss.Client, cfg *config.OssConfig) IOssService {
	return &OssService{
		Client:     client,
		BucketName: cfg.Bucket,
		PublicHost: cfg.PublicHost,
	}
}

// UploadPreview 校验并上传笔记预览图
func (s *OssService) UploadPreview(ctx context.Context, header *multipart.FileHeader) (*types.UploadResponse, error) {
	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true}
	if !allowedFmt[format] {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("note/%s/%d%s",
		time.Now().Format("2006/01/02"),
		snowflake.GenID(),
		ext,
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if err := s.UploadReader(ctx, limited, objectKey); err != nil {
		return nil, err
	}

	return &types.UploadResponse{
		Key:    fmt.Sprintf("https://%s/%s", s.PublicHost, objectKey),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// UploadReader 上传 Reader（HTTP 上传场景）
func (s *OssService) UploadReader(ctx context.Context, reader io.Reader, objectKey string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}

// Delete 删除对象
func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
