package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcourt-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret-0123456789-test-secret-0123456789",
	}
}

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Post("/api/owner/signup", OwnerSignUpHandler(cfg))
	app.Post("/api/owner/login", OwnerLoginHandler(cfg))
	app.Post("/api/customer/signup", CustomerSignUpHandler(cfg))
	app.Post("/api/customer/login", CustomerLoginHandler(cfg))
	app.Get("/api/owner/details", JWTMiddleware(cfg), OwnerDetailsHandler())
	app.Get("/api/customer/details", JWTMiddleware(cfg), CustomerDetailsHandler())
	return app
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("istek gövdesi oluşturulamadı: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("cevap gövdesi çözümlenemedi: %v", err)
	}
	return body
}

func TestOwnerSignUpAndLogin(t *testing.T) {
	setupDB(t)
	cfg := testConfig()
	app := newTestApp(cfg)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/owner/signup", SignUpRequest{
		Name: "Raj Patel", Email: "Raj.Patel@foodcourt.com", Password: "owner123",
	}))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("201 bekleniyor, %d geldi", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["token"] == nil || body["token"] == "" {
		t.Fatal("kayıt cevabı token içermeli")
	}
	owner, ok := body["owner"].(map[string]interface{})
	if !ok {
		t.Fatal("kayıt cevabı owner içermeli")
	}
	if owner["email"] != "raj.patel@foodcourt.com" {
		t.Fatalf("email küçük harfe çevrilmeli, %v geldi", owner["email"])
	}

	// Giriş: büyük/küçük harf farkı emaili etkilemez
	resp, err = app.Test(jsonRequest(t, "POST", "/api/owner/login", LoginRequest{
		Email: "RAJ.PATEL@foodcourt.com", Password: "owner123",
	}))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("200 bekleniyor, %d geldi", resp.StatusCode)
	}

	// Yanlış şifre
	resp, err = app.Test(jsonRequest(t, "POST", "/api/owner/login", LoginRequest{
		Email: "raj.patel@foodcourt.com", Password: "wrong",
	}))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("yanlış şifre için 401 bekleniyor, %d geldi", resp.StatusCode)
	}
}

func TestOwnerSignUpDuplicateEmail(t *testing.T) {
	setupDB(t)
	cfg := testConfig()
	app := newTestApp(cfg)

	body := SignUpRequest{Name: "Raj Patel", Email: "raj@foodcourt.com", Password: "owner123"}
	resp, err := app.Test(jsonRequest(t, "POST", "/api/owner/signup", body))
	if err != nil || resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("ilk kayıt başarılı olmalı: %v / %d", err, resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, "POST", "/api/owner/signup", body))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("tekrar kayıt için 409 bekleniyor, %d geldi", resp.StatusCode)
	}
}

func TestCustomerCanReuseOwnerEmail(t *testing.T) {
	setupDB(t)
	cfg := testConfig()
	app := newTestApp(cfg)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/owner/signup", SignUpRequest{
		Name: "Raj Patel", Email: "raj@foodcourt.com", Password: "owner123",
	}))
	if err != nil || resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("owner kaydı başarılı olmalı: %v / %d", err, resp.StatusCode)
	}

	// Email benzersizliği hesap türü içinde geçerli; aynı email müşteri olabilir
	resp, err = app.Test(jsonRequest(t, "POST", "/api/customer/signup", SignUpRequest{
		Name: "Raj Patel", Email: "raj@foodcourt.com", Password: "customer123",
	}))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("aynı email müşteri olarak kayıt olabilmeli, %d geldi", resp.StatusCode)
	}
}

func TestJWTMiddlewareProtectsDetails(t *testing.T) {
	setupDB(t)
	cfg := testConfig()
	app := newTestApp(cfg)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/customer/signup", SignUpRequest{
		Name: "John Smith", Email: "john@email.com", Password: "customer123",
	}))
	if err != nil || resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("kayıt başarılı olmalı: %v / %d", err, resp.StatusCode)
	}
	token, _ := decodeBody(t, resp)["token"].(string)
	if token == "" {
		t.Fatal("kayıt cevabı token içermeli")
	}

	// Token yok
	req := httptest.NewRequest("GET", "/api/customer/details", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("tokensiz istek için 401 bekleniyor, %d geldi", resp.StatusCode)
	}

	// Geçerli token
	req = httptest.NewRequest("GET", "/api/customer/details", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("geçerli token için 200 bekleniyor, %d geldi", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["email"] != "john@email.com" {
		t.Fatalf("müşteri detayları dönmeli, %v geldi", body)
	}

	// Müşteri tokenı owner ucunu açamaz
	req = httptest.NewRequest("GET", "/api/owner/details", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("rol uyuşmazlığı için 401 bekleniyor, %d geldi", resp.StatusCode)
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(cfg.JWTSecret, 42, RoleOwner)
	if err != nil {
		t.Fatalf("GenerateToken hata döndü: %v", err)
	}

	claims, err := parseToken(cfg, token)
	if err != nil {
		t.Fatalf("token çözümlenemedi: %v", err)
	}
	if claims.UserID != 42 || claims.Role != RoleOwner {
		t.Fatalf("claims korunmalı: %+v", claims)
	}

	// Yanlış secret reddedilir
	if _, err := parseToken(&config.Config{JWTSecret: "another-secret-another-secret-another"}, token); err == nil {
		t.Fatal("yanlış secret ile token geçmemeli")
	}
}
