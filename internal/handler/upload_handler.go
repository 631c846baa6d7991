package handler

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/config"
)

// 允许上传的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler 图片上传接口
type UploadHandler struct {
	dir     string
	maxSize int64
}

// NewUploadHandler 创建图片上传接口
func NewUploadHandler(cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{
		dir:     cfg.Dir,
		maxSize: cfg.MaxSizeMB * 1024 * 1024,
	}
}

// UploadImage 保存上传的图片，返回可访问路径
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "未提供图片文件")
		return
	}

	if h.maxSize > 0 && file.Size > h.maxSize {
		ErrorResponse(c, http.StatusBadRequest, "图片大小超过限制")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		ErrorResponse(c, http.StatusBadRequest, "只支持jpg、png、gif、webp格式的图片")
		return
	}

	filename, err := randomFilename(ext)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		HandleLogicError(c, err)
		return
	}

	dst := filepath.Join(h.dir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "图片上传成功", gin.H{
		"filename":     filename,
		"originalName": file.Filename,
		"size":         file.Size,
		"url":          "/uploads/" + filename,
	})
}

// randomFilename 生成随机十六进制文件名
func randomFilename(ext string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate filename: %w", err)
	}
	return hex.EncodeToString(buf) + ext, nil
}
