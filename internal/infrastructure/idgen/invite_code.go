package idgen

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const hexDigits = "0123456789abcdef"

// InviteCodeGenerator 사용자 초대 코드를 생성합니다.
type InviteCodeGenerator struct {
	length int
}

// NewInviteCodeGenerator length 자리의 소문자 16진수 코드를 만드는 생성기
func NewInviteCodeGenerator(length int) *InviteCodeGenerator {
	return &InviteCodeGenerator{length: length}
}

// Generate 예: "3f9a0c1b"
func (g *InviteCodeGenerator) Generate() (string, error) {
	code, err := gonanoid.Generate(hexDigits, g.length)
	if err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	return code, nil
}
