package utils

import (
	"biotrunk/config"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailTransport is the shared SendGrid transport. It carries its own
// rest.Client so the bounded timeout never touches the library-global
// sendgrid.DefaultClient.
type mailTransport struct {
	apiKey string
	http   *rest.Client
}

var (
	mailMu     sync.Mutex
	mailClient *mailTransport
)

// getMailClient returns the shared mail transport, constructed on first use.
// Missing credentials surface as a configuration error to the caller, they are
// never fatal at process start.
func getMailClient() (*mailTransport, error) {
	mailMu.Lock()
	defer mailMu.Unlock()

	if mailClient != nil {
		return mailClient, nil
	}

	sender := config.AppConfig.EmailSender
	apiKey := config.AppConfig.SendgridAPIKey

	if sender == "" || apiKey == "" {
		log.Println("[EMAIL] Missing EMAIL_SENDER or SENDGRID_API_KEY")
		return nil, fmt.Errorf("%w: EMAIL_SENDER / SENDGRID_API_KEY", ErrConfiguration)
	}

	// Bounded transport timeout, mail dispatch must never hang a request
	mailClient = &mailTransport{
		apiKey: apiKey,
		http:   &rest.Client{HTTPClient: &http.Client{Timeout: 30 * time.Second}},
	}

	log.Printf("[EMAIL] Transport initialized for sender %s", maskEmail(sender))
	return mailClient, nil
}

func (m *mailTransport) send(message *mail.SGMailV3) (*rest.Response, error) {
	request := sendgrid.GetRequest(m.apiKey, "/v3/mail/send", "https://api.sendgrid.com")
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)
	return m.http.Send(request)
}

func maskEmail(email string) string {
	if len(email) <= 4 {
		return "***"
	}
	return email[:4] + "..."
}

// EnrollmentEmailData carries everything the confirmation mail renders
type EnrollmentEmailData struct {
	StudentName   string
	StudentEmail  string
	CourseName    string
	CourseID      string
	EnrollmentID  string
	Amount        float64
	TransactionID string
	ReceiptNumber string
}

// SendEnrollmentEmail sends the enrollment confirmation with the PDF receipt
// attached. Callers in the payment flow treat a failure here as non-fatal:
// log and continue, the enrollment stands.
func SendEnrollmentEmail(data EnrollmentEmailData, receiptPDF []byte) error {
	client, err := getMailClient()
	if err != nil {
		return err
	}

	from := mail.NewEmail("Biology Trunk", config.AppConfig.EmailSender)
	to := mail.NewEmail(data.StudentName, data.StudentEmail)
	subject := "Enrollment Successful - " + data.CourseName

	body := fmt.Sprintf(`
		<p>Hi <strong>%s</strong>,</p>
		<p>You have successfully enrolled in <strong>%s</strong>!</p>
		<div class="info-box">
			<strong>Enrollment Details:</strong>
			<ul>
				<li><strong>Enrollment ID:</strong> %s</li>
				<li><strong>Course:</strong> %s</li>
				<li><strong>Amount Paid:</strong> Rs. %.2f</li>
				<li><strong>Transaction ID:</strong> %s</li>
				<li><strong>Payment Status:</strong> Completed</li>
			</ul>
		</div>
		<p>Your payment receipt PDF is attached to this email. Please keep it for your records.</p>
		<a href="%s/student-dashboard" class="btn">Start Learning</a>
	`, data.StudentName, data.CourseName, data.EnrollmentID, data.CourseName,
		data.Amount, data.TransactionID, config.AppConfig.FrontendURL)

	message := mail.NewSingleEmail(from, subject, to,
		fmt.Sprintf("You have successfully enrolled in %s. Receipt: %s", data.CourseName, data.ReceiptNumber),
		getEmailTemplate("Congratulations!", body))

	if len(receiptPDF) > 0 {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(receiptPDF))
		attachment.SetType("application/pdf")
		attachment.SetFilename(fmt.Sprintf("enrollment_receipt_%s.pdf", data.ReceiptNumber))
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	resp, err := client.send(message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailTransport, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d: %s", ErrMailTransport, resp.StatusCode, resp.Body)
	}

	log.Printf("[EMAIL] Enrollment confirmation sent to %s (receipt %s)", maskEmail(data.StudentEmail), data.ReceiptNumber)
	return nil
}

// SendOTPEmail sends a password-reset OTP. Unlike the enrollment confirmation
// this send is fatal to its caller: password reset must not report success
// when the code never went out.
func SendOTPEmail(email, name, code string, expiryMinutes int) error {
	client, err := getMailClient()
	if err != nil {
		return err
	}

	from := mail.NewEmail("Biology Trunk", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	subject := "Password Reset OTP - Biology Trunk"

	body := fmt.Sprintf(`
		<p>Hi <strong>%s</strong>,</p>
		<p>We received a request to reset your password. Use the OTP below:</p>
		<div style="text-align: center; margin: 30px 0;">
			<h2 style="font-size: 36px; letter-spacing: 8px; margin: 0;">%s</h2>
		</div>
		<div class="info-box">
			This OTP will expire in <strong>%d minutes</strong>. If you didn't request this, please ignore this email.
		</div>
		<p>For security reasons, never share this OTP with anyone.</p>
	`, name, code, expiryMinutes)

	message := mail.NewSingleEmail(from, subject, to,
		fmt.Sprintf("Your password reset OTP is %s. It expires in %d minutes.", code, expiryMinutes),
		getEmailTemplate("Password Reset Request", body))

	resp, err := client.send(message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailTransport, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d: %s", ErrMailTransport, resp.StatusCode, resp.Body)
	}

	log.Printf("[EMAIL] OTP sent to %s", maskEmail(email))
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2E7D32; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #2E7D32; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2196F3; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #4CAF50; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>BIOLOGY TRUNK</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Biology Trunk. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
