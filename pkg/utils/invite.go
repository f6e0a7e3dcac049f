package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	InviteCodeLength   = 8
	inviteCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateInviteCode returns a random lowercase alphanumeric code of InviteCodeLength.
func GenerateInviteCode() (string, error) {
	return GenerateRandomCode(InviteCodeLength)
}

// GenerateRandomCode returns a random string of length drawn from [a-z0-9].
func GenerateRandomCode(length int) (string, error) {
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
