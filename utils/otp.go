package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateOTP returns a numeric one-time code of the given length. The
// first digit is never zero so the code survives round trips through
// numeric inputs.
func GenerateOTP(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("otp length must be positive, got %d", length)
	}
	var b strings.Builder
	for i := 0; i < length; i++ {
		lo := int64(0)
		if i == 0 {
			lo = 1
		}
		n, err := rand.Int(rand.Reader, big.NewInt(10-lo))
		if err != nil {
			return "", fmt.Errorf("failed to generate otp: %w", err)
		}
		fmt.Fprintf(&b, "%d", n.Int64()+lo)
	}
	return b.String(), nil
}

// GenerateEnrollmentCode returns a shareable site code like "SITE-7K2M".
// The alphabet excludes easily-confused characters (0/O, 1/I/L).
func GenerateEnrollmentCode() (string, error) {
	var b strings.Builder
	b.WriteString("SITE-")
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate enrollment code: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
