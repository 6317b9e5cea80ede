package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"foodcourt-backend/internal/config"

	"github.com/google/uuid"
)

// DefaultImage - görseli olmayan kayıtlar için sabit dosya adı
const DefaultImage = "default-food.jpg"

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

var (
	ErrInvalidExtension = errors.New("geçersiz dosya uzantısı (izin verilen: png, jpg, jpeg, gif, webp)")
	ErrFileTooLarge     = errors.New("dosya boyutu sınırı aşıyor")
)

func extension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext
}

// safeName - dosya adında kullanılacak güvenli isim üretir
func safeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// SaveImage - yüklenen görseli uzantı ve boyut kontrolünden geçirip
// "<prefix>_<isim>_<rastgele>.<uzantı>" adıyla kaydeder, dosya adını döner.
// Rastgele bileşen eş zamanlı yüklemelerde çakışmayı önler.
func SaveImage(cfg *config.Config, fileHeader *multipart.FileHeader, prefix, name string) (string, error) {
	ext := extension(fileHeader.Filename)
	if !allowedExtensions[ext] {
		return "", ErrInvalidExtension
	}
	if fileHeader.Size > cfg.MaxUploadSize {
		return "", ErrFileTooLarge
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(cfg.UploadPath, 0o755); err != nil {
		return "", err
	}

	filename := prefix + "_" + safeName(name) + "_" + uuid.NewString()[:8] + "." + ext
	dst, err := os.Create(filepath.Join(cfg.UploadPath, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

// Remove - kayıtlı görseli siler; varsayılan görsele dokunmaz.
func Remove(cfg *config.Config, filename string) error {
	if filename == "" || filename == DefaultImage {
		return nil
	}
	path := filepath.Join(cfg.UploadPath, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}
