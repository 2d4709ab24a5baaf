package blobkey

import (
	"mime"
	"path"
	"strings"

	"github.com/segmentio/ksuid"
)

// WorkerImagePrefix is the key prefix for worker photos.
const WorkerImagePrefix = "worker_images"

// NewWorkerImageKey returns a fresh time-ordered key such as
// worker_images/2Hk0...Xq.jpg. The extension follows the content type, then
// the original filename, and falls back to jpg.
func NewWorkerImageKey(contentType, filename string) string {
	return path.Join(WorkerImagePrefix, ksuid.New().String()+"."+extensionFor(contentType, filename))
}

func extensionFor(contentType, filename string) string {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	}
	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), "."); ext != "" && len(ext) <= 5 {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return strings.TrimPrefix(exts[0], ".")
	}
	return "jpg"
}
