package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// RandomVCC generates a 16-digit virtual card number assigned to every new
// user for receiving transfers.
func RandomVCC() string {
	digits := make([]byte, 16)
	digits[0] = '4'
	for i := 1; i < 16; i++ {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// GenerateTopupNo produces a reference for topups created without a
// client-supplied number.
func GenerateTopupNo() string {
	return fmt.Sprintf("TOPUP-%s", uuid.NewString())
}
