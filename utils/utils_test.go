package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var receiptPattern = regexp.MustCompile(`^RCP-\d+-[A-Z0-9]{9}$`)

func TestGenerateReceiptNumberFormat(t *testing.T) {
	receipt := GenerateReceiptNumber()
	assert.Regexp(t, receiptPattern, receipt)
}

func TestGenerateReceiptNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		receipt := GenerateReceiptNumber()
		assert.False(t, seen[receipt], "duplicate receipt %s", receipt)
		seen[receipt] = true
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		assert.Len(t, code, 6)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}
