package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxFilesPerUpload = 10

// Image types accepted for sketch uploads. Detection is done on the file
// content, not the client-supplied Content-Type.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type uploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

// saveSketchImage validates and stores one uploaded image, returning its
// public URL under /uploads.
func (s *Server) saveSketchImage(header *multipart.FileHeader) (uploadedFile, error) {
	if header.Size > s.cfg.Upload.MaxBytes {
		return uploadedFile{}, fmt.Errorf("file exceeds %d bytes", s.cfg.Upload.MaxBytes)
	}

	src, err := header.Open()
	if err != nil {
		return uploadedFile{}, err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return uploadedFile{}, err
	}
	if !allowedImageTypes[mtype.String()] {
		return uploadedFile{}, fmt.Errorf("only JPEG, PNG and WebP images are allowed")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return uploadedFile{}, err
	}

	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	name := fmt.Sprintf("sketch-%d-%s%s", time.Now().UnixNano(), token, mtype.Extension())

	dst, err := os.Create(filepath.Join(s.cfg.Upload.Dir, name))
	if err != nil {
		return uploadedFile{}, err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return uploadedFile{}, err
	}

	return uploadedFile{
		URL:      "/uploads/" + name,
		Filename: name,
		Size:     header.Size,
		MimeType: mtype.String(),
	}, nil
}

func (s *Server) uploadSketchImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := s.saveSketchImage(header)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, file)
}

func (s *Server) uploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	headers := form.File["images"]
	if len(headers) > maxFilesPerUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d files per upload", maxFilesPerUpload)})
		return
	}

	files := make([]uploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := s.saveSketchImage(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		files = append(files, file)
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}
