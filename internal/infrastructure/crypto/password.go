package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatchedPassword는 비밀번호가 해시와 일치하지 않을 때 반환됩니다.
var ErrMismatchedPassword = errors.New("password does not match")

// BcryptHasher bcrypt 기반 비밀번호 해셔
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cost가 범위를 벗어나면 bcrypt.DefaultCost를 사용합니다.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash 비밀번호를 해시합니다.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("비밀번호 해시 실패: %w", err)
	}
	return string(hash), nil
}

// Compare 비밀번호가 해시와 일치하는지 확인합니다.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatchedPassword
	}
	return err
}
