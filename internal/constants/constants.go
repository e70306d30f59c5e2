package constants

import "time"

// auth constants
const (
	// Session tokens expire in 1 hour.
	SessionTokenExpiry = time.Hour * 1
	// OTP codes expire 5 minutes after issuance.
	OTPExpiry = 5 * time.Minute
)

const (
	Username string = "username"
	Expiry   string = "exp"
)

const (
	Port         string = "PORT"
	JwtSecret    string = "JWT_SECRET"
	SMTPHost     string = "SMTP_HOST"
	SMTPPort     string = "SMTP_PORT"
	SMTPUser     string = "SMTP_USER"
	SMTPPassword string = "SMTP_PASSWORD"
	SMTPFrom     string = "SMTP_FROM"
)

// report download contract
const (
	ReportFileName    string = "health_report.pdf"
	ReportContentType string = "application/pdf"
)
