package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptData carries the facts printed on an enrollment receipt
type ReceiptData struct {
	ReceiptNumber string
	StudentName   string
	StudentEmail  string
	EnrollmentID  string
	CourseName    string
	CourseID      string
	Amount        float64
	TransactionID string
	PaymentStatus string
}

// GenerateReceiptPDF renders a fixed-layout receipt and returns the PDF bytes.
// No side effects beyond the returned buffer; the caller attaches or discards it.
func GenerateReceiptPDF(data ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Enrollment Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	now := time.Now()
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Receipt Number: %s", data.ReceiptNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Date: %s", now.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Time: %s", now.Format("15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Student details
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Student Information", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Name: %s", data.StudentName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Email: %s", data.StudentEmail), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Enrollment ID: %s", data.EnrollmentID), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Course details
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Course Information", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Course: %s", data.CourseName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Course ID: %s", data.CourseID), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Payment details
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Payment Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Amount: Rs. %.2f", data.Amount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Payment Method: Razorpay", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Transaction ID: %s", data.TransactionID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", data.PaymentStatus), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Footer
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Thank you for your purchase!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "For more information, visit: biology.trunk.com", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt pdf render: %w", err)
	}
	return buf.Bytes(), nil
}
