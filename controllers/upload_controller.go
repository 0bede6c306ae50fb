package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"aqarpress/config"
	"aqarpress/storage"
)

const maxUploadSize = 10 << 20 // 10 MB

type UploadController struct {
	s3Client *s3.Client
	cfg      *config.Config
	log      *zap.Logger
}

func NewUploadController(s3Client *s3.Client, cfg *config.Config, log *zap.Logger) *UploadController {
	return &UploadController{s3Client: s3Client, cfg: cfg, log: log}
}

// POST /uploads (multipart/form-data, field "file"). Returns the public
// object-store URL of the stored file.
func (uc *UploadController) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), filepath.Ext(header.Filename))

	url, err := storage.UploadFile(c.Request.Context(), uc.s3Client, uc.cfg.S3Bucket, key, contentType, data, uc.cfg)
	if err != nil {
		uc.log.Error("upload failed", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
