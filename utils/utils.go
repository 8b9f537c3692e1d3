package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GenerateReceiptNumber mints a human-facing receipt identifier of the form
// RCP-<epoch-ms>-<9 chars of [A-Z0-9]>. The timestamp plus random suffix keeps
// it unique; it is assigned exactly once per completed payment.
func GenerateReceiptNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("RCP-%d-%s", time.Now().UnixMilli(), suffix)
}
