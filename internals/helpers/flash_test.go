package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func TestFlash_OneShot(t *testing.T) {
	store := session.New()
	app := fiber.New()

	app.Post("/set", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		SetFlash(sess, "error", "Buku tidak ditemukan.")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/take", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		f := TakeFlash(sess)
		if f == nil {
			return c.SendString("kosong")
		}
		return c.SendString(f.Level + ":" + f.Message)
	})

	// set flash, simpan cookie session
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/set", nil))
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("tidak ada cookie session")
	}

	readBody := func(resp *http.Response) string {
		buf := make([]byte, 128)
		n, _ := resp.Body.Read(buf)
		return string(buf[:n])
	}

	// ambil pertama: dapat pesan
	req := httptest.NewRequest(fiber.MethodGet, "/take", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if got := readBody(resp); got != "error:Buku tidak ditemukan." {
		t.Fatalf("flash pertama = %q", got)
	}

	// ambil kedua: sudah habis (one-shot)
	req = httptest.NewRequest(fiber.MethodGet, "/take", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("take kedua: %v", err)
	}
	if got := readBody(resp); got != "kosong" {
		t.Fatalf("flash harus one-shot, dapat %q", got)
	}
}

func TestFlash_NilSessionAman(t *testing.T) {
	SetFlash(nil, "success", "x") // tidak boleh panic
	if f := TakeFlash(nil); f != nil {
		t.Fatalf("TakeFlash(nil) = %v", f)
	}
}
