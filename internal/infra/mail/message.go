// Package mail delivers password recovery messages over SMTP or to the log.
package mail

import (
	"fmt"
	"strings"
	"time"
)

const (
	subjectResetOTP  = "Password Reset OTP"
	subjectResetLink = "Password Reset Request"
)

type message struct {
	subject string
	body    string
}

func resetOTPMessage(otp string, validFor time.Duration) message {
	return message{
		subject: subjectResetOTP,
		body: fmt.Sprintf(
			"Your OTP for password reset is: %s\n\nIt is valid for %s. If you did not request this, ignore this email.",
			otp, humanDuration(validFor),
		),
	}
}

func resetLinkMessage(link string, validFor time.Duration) message {
	return message{
		subject: subjectResetLink,
		body: fmt.Sprintf(
			"Use the link below to reset your password:\n\n%s\n\nThe link expires in %s. If you did not request this, ignore this email.",
			link, humanDuration(validFor),
		),
	}
}

// render builds an RFC 5322 plain text message.
func (m message) render(from, to string) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", m.subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	b.WriteString(strings.ReplaceAll(m.body, "\n", "\r\n"))
	b.WriteString("\r\n")

	return []byte(b.String())
}

func humanDuration(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		return pluralize(int(d/time.Hour), "hour")
	}
	if d >= time.Minute && d%time.Minute == 0 {
		return pluralize(int(d/time.Minute), "minute")
	}

	return d.String()
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
