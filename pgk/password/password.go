package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordLen = 64

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMaxLen64 = errors.New("password too long, max 64 characters")
	ErrPasswordGenerate = errors.New("password generate error")
)

func HashPassword(password string, passCost int) (string, error) {
	if len(password) < 1 {
		return "", ErrPasswordRequired
	}
	if len(password) > maxPasswordLen {
		return "", ErrPasswordMaxLen64
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passCost)
	if err != nil {
		return "", ErrPasswordGenerate
	}

	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
