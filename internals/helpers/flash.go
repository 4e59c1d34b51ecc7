// file: internals/helpers/flash.go
package helper

import (
	"log"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// Flash adalah pesan sekali-pakai yang dibawa lintas redirect
// (pengganti flash() di view HTML).
type Flash struct {
	Level   string `json:"level"` // "success" | "error"
	Message string `json:"message"`
}

const (
	flashLevelKey   = "flash_level"
	flashMessageKey = "flash_message"
)

// SetFlash menyimpan pesan flash di session caller.
func SetFlash(sess *session.Session, level, message string) {
	if sess == nil {
		return
	}
	sess.Set(flashLevelKey, level)
	sess.Set(flashMessageKey, message)
	if err := sess.Save(); err != nil {
		log.Println("[WARN] Gagal simpan flash:", err)
	}
}

// TakeFlash mengambil sekaligus menghapus pesan flash (one-shot).
func TakeFlash(sess *session.Session) *Flash {
	if sess == nil {
		return nil
	}
	msg, ok := sess.Get(flashMessageKey).(string)
	if !ok || msg == "" {
		return nil
	}
	level, _ := sess.Get(flashLevelKey).(string)
	if level == "" {
		level = "success"
	}

	sess.Delete(flashLevelKey)
	sess.Delete(flashMessageKey)
	if err := sess.Save(); err != nil {
		log.Println("[WARN] Gagal hapus flash:", err)
	}

	return &Flash{Level: level, Message: msg}
}
