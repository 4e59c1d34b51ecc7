package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func doRequest(t *testing.T, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", h)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func TestJsonError_ErrorCodePerStatus(t *testing.T) {
	cases := []struct {
		status   int
		wantCode string
	}{
		{fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{fiber.StatusForbidden, "FORBIDDEN"},
		{fiber.StatusNotFound, "NOT_FOUND"},
		{fiber.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		status, body := doRequest(t, func(c *fiber.Ctx) error {
			return JsonError(c, tc.status, "pesan")
		})
		if status != tc.status {
			t.Fatalf("status = %d, mau %d", status, tc.status)
		}
		if body["error_code"] != tc.wantCode {
			t.Fatalf("error_code = %v, mau %s", body["error_code"], tc.wantCode)
		}
		if body["success"] != false || body["message"] != "pesan" {
			t.Fatalf("envelope salah: %v", body)
		}
	}
}

func TestJsonValidationError_Envelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{"Title": {"required"}})
	})
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", status)
	}
	errs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("errors hilang: %v", body)
	}
	if _, ok := errs["Title"]; !ok {
		t.Fatalf("field Title hilang: %v", errs)
	}
}

func TestJsonOKDanCreated(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"k": "v"})
	})
	if status != fiber.StatusOK || body["message"] != "ok" || body["success"] != true {
		t.Fatalf("JsonOK default: %d %v", status, body)
	}

	status, body = doRequest(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, "Buku berhasil ditambahkan.", nil)
	})
	if status != fiber.StatusCreated || body["message"] != "Buku berhasil ditambahkan." {
		t.Fatalf("JsonCreated: %d %v", status, body)
	}
}

func TestJsonList_FlashIkutTerkirim(t *testing.T) {
	_, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonList(c, "Daftar buku", []string{}, &Flash{Level: "success", Message: "Buku berhasil dihapus."})
	})
	flash, ok := body["flash"].(map[string]any)
	if !ok {
		t.Fatalf("flash hilang: %v", body)
	}
	if flash["message"] != "Buku berhasil dihapus." {
		t.Fatalf("flash = %v", flash)
	}

	// tanpa flash (nil bertipe): field tidak muncul
	_, body = doRequest(t, func(c *fiber.Ctx) error {
		var f *Flash
		return JsonList(c, "Daftar buku", []string{}, f)
	})
	if _, ok := body["flash"]; ok {
		t.Fatalf("flash kosong tidak boleh muncul: %v", body)
	}
}

func TestValidationFieldErrors(t *testing.T) {
	type req struct {
		Title string `validate:"required"`
		URL   string `validate:"required"`
	}
	err := validator.New().Struct(req{})
	m := ValidationFieldErrors(err)
	if len(m["Title"]) == 0 || len(m["URL"]) == 0 {
		t.Fatalf("field error hilang: %v", m)
	}
}
