package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodcourt-backend/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		UploadPath:    t.TempDir(),
		MaxUploadSize: 1024,
	}
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("form dosyası oluşturulamadı: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("form dosyası yazılamadı: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("multipart form çözümlenemedi: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestSaveImage(t *testing.T) {
	cfg := testConfig(t)
	fh := makeFileHeader(t, "photo.PNG", []byte("fake-png-data"))

	filename, err := SaveImage(cfg, fh, "outlet", "Addis Kitchen")
	if err != nil {
		t.Fatalf("SaveImage hata döndü: %v", err)
	}
	if !strings.HasPrefix(filename, "outlet_addis_kitchen_") {
		t.Fatalf("dosya adı prefix ve güvenli isimle başlamalı, %q geldi", filename)
	}
	if !strings.HasSuffix(filename, ".png") {
		t.Fatalf("uzantı küçük harfe çevrilmeli, %q geldi", filename)
	}

	data, err := os.ReadFile(filepath.Join(cfg.UploadPath, filename))
	if err != nil {
		t.Fatalf("kaydedilen dosya okunamadı: %v", err)
	}
	if string(data) != "fake-png-data" {
		t.Fatalf("dosya içeriği korunmalı, %q geldi", data)
	}
}

func TestSaveImageRejectsExtension(t *testing.T) {
	cfg := testConfig(t)
	fh := makeFileHeader(t, "malware.exe", []byte("x"))

	if _, err := SaveImage(cfg, fh, "outlet", "test"); !errors.Is(err, ErrInvalidExtension) {
		t.Fatalf("ErrInvalidExtension bekleniyor, %v geldi", err)
	}
}

func TestSaveImageRejectsOversized(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxUploadSize = 4
	fh := makeFileHeader(t, "big.jpg", []byte("more-than-four-bytes"))

	if _, err := SaveImage(cfg, fh, "outlet", "test"); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("ErrFileTooLarge bekleniyor, %v geldi", err)
	}
}

func TestRemove(t *testing.T) {
	cfg := testConfig(t)

	path := filepath.Join(cfg.UploadPath, "outlet_test_abc.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("test dosyası yazılamadı: %v", err)
	}

	if err := Remove(cfg, "outlet_test_abc.jpg"); err != nil {
		t.Fatalf("Remove hata döndü: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("dosya silinmeliydi")
	}

	// Varsayılan görsel ve var olmayan dosya sessizce geçilir
	if err := Remove(cfg, DefaultImage); err != nil {
		t.Fatalf("varsayılan görsel için hata dönmemeli: %v", err)
	}
	if err := Remove(cfg, "missing.jpg"); err != nil {
		t.Fatalf("eksik dosya için hata dönmemeli: %v", err)
	}
	if err := Remove(cfg, ""); err != nil {
		t.Fatalf("boş isim için hata dönmemeli: %v", err)
	}
}
