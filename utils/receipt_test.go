package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceiptPDF(t *testing.T) {
	pdfBytes, err := GenerateReceiptPDF(ReceiptData{
		ReceiptNumber: "RCP-1756600000000-A1B2C3D4E",
		StudentName:   "Asha Verma",
		StudentEmail:  "asha@example.com",
		EnrollmentID:  "42",
		CourseName:    "NEET Biology Crash Course",
		CourseID:      "7",
		Amount:        2999,
		TransactionID: "pay_LxYz123456",
		PaymentStatus: "completed",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateReceiptPDFEmptyFields(t *testing.T) {
	// Missing optional fields must still render a valid document
	pdfBytes, err := GenerateReceiptPDF(ReceiptData{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
