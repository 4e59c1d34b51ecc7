// internals/features/users/auth/service/password_service.go
package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Hash password existing dibuat oleh django.contrib.auth (passlib
// django_pbkdf2_sha256). Format wire:
//
//	pbkdf2_sha256$<iterations>$<salt>$<base64 digest>
//
// Verifier ini harus kompatibel persis dengan hash yang sudah tersimpan,
// jadi jangan ganti skema tanpa migrasi kredensial.
const djangoAlgoPrefix = "pbkdf2_sha256"

var ErrInvalidHashFormat = errors.New("format hash password tidak valid")

// VerifyPassword mengecek password plaintext terhadap hash legacy.
// Mismatch = (false, nil); hash rusak = error. Perbandingan digest
// memakai constant-time compare.
func VerifyPassword(password, encoded string) (bool, error) {
	if password == "" || encoded == "" {
		return false, nil
	}

	iterations, salt, want, err := parseDjangoHash(encoded)
	if err != nil {
		return false, err
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func parseDjangoHash(encoded string) (int, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return 0, nil, nil, ErrInvalidHashFormat
	}
	if parts[0] != djangoAlgoPrefix {
		return 0, nil, nil, errors.New("algoritma hash password tidak didukung: " + parts[0])
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, ErrInvalidHashFormat
	}

	// Salt Django disimpan sebagai teks mentah, bukan base64.
	salt := []byte(parts[2])
	if len(salt) == 0 {
		return 0, nil, nil, ErrInvalidHashFormat
	}

	digest, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil || len(digest) == 0 {
		return 0, nil, nil, ErrInvalidHashFormat
	}

	return iterations, salt, digest, nil
}
