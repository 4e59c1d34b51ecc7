package constants

import "fmt"

// Template pesan error otorisasi
const (
	ErrOnlyAdminCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrMustLogin          = "❌ Silakan login terlebih dahulu."
	ErrInvalidCredentials = "Username atau password salah."
)

// RoleErrorAdmin menghasilkan pesan forbidden per fitur
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}
