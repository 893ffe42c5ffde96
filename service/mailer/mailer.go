package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

type Mailer struct {
	db *gorm.DB
}

func NewMailer(db *gorm.DB) *Mailer {
	return &Mailer{db: db}
}

type confirmationData struct {
	CandidateName string
	Date          string
	Time          string
	Role          string
	MeetingLink   string
}

// SendConfirmation looks up the booking and the default meeting link, writes
// the link back onto the booking when one is configured, and mails the
// candidate the confirmation. Callers treat the result as advisory only.
func (m *Mailer) SendConfirmation(bookingID uuid.UUID) error {
	var booking models.Booking
	if err := m.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		return fmt.Errorf("booking %s not found: %w", bookingID, err)
	}

	meetingLink := ""
	var setting models.AdminSetting
	err := m.db.Where("setting_key = ?", models.SettingDefaultMeetingLink).
		First(&setting).Error
	switch err {
	case nil:
		meetingLink = setting.SettingValue
	case gorm.ErrRecordNotFound:
		// No link configured, send without one.
	default:
		return fmt.Errorf("loading meeting link setting: %w", err)
	}

	if meetingLink != "" {
		if err := m.db.Model(&booking).Update("meeting_link", meetingLink).Error; err != nil {
			return fmt.Errorf("writing meeting link to booking %s: %w", bookingID, err)
		}
	}

	formattedDate := formatLongDate(booking.BookingDate)

	body, err := RenderConfirmation(confirmationData{
		CandidateName: booking.CandidateName,
		Date:          formattedDate,
		Time:          booking.BookingTime,
		Role:          booking.RoleApplied,
		MeetingLink:   meetingLink,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Interview Confirmed — %s at %s", formattedDate, booking.BookingTime)
	return m.send(booking.CandidateEmail, subject, body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	msg := gomail.NewMessage()
	msg.SetHeader("From", smtpUser)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP port: %v", err)
	}
	d := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return d.DialAndSend(msg)
}

func formatLongDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0; padding:0; background-color:#0a0a0a; font-family:-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#0a0a0a; padding:40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color:#141414; border-radius:12px; border:1px solid #262626;">
          <tr>
            <td style="padding:32px 24px; text-align:center; border-bottom:1px solid #262626;">
              <h1 style="margin:0; color:#a3e635; font-size:24px;">Interview Confirmed</h1>
            </td>
          </tr>
          <tr>
            <td style="padding:24px;">
              <p style="color:#d4d4d4; margin:0 0 20px; font-size:16px;">
                Hi <strong style="color:#fff;">{{.CandidateName}}</strong>, your interview has been successfully scheduled.
              </p>
              <table width="100%" cellpadding="0" cellspacing="0" style="background:#1c1c1c; border-radius:8px; border:1px solid #262626;">
                <tr>
                  <td style="padding:16px 20px; border-bottom:1px solid #262626;">
                    <span style="color:#737373; font-size:13px;">Date</span><br/>
                    <span style="color:#fff; font-size:15px; font-weight:600;">{{.Date}}</span>
                  </td>
                </tr>
                <tr>
                  <td style="padding:16px 20px; border-bottom:1px solid #262626;">
                    <span style="color:#737373; font-size:13px;">Time</span><br/>
                    <span style="color:#fff; font-size:15px; font-weight:600;">{{.Time}}</span>
                  </td>
                </tr>
                <tr>
                  <td style="padding:16px 20px;">
                    <span style="color:#737373; font-size:13px;">Role</span><br/>
                    <span style="color:#fff; font-size:15px; font-weight:600;">{{.Role}}</span>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          {{if .MeetingLink}}
          <tr>
            <td style="padding:16px 24px; background:#1a2e1a; border-radius:8px;">
              <p style="margin:0 0 8px; color:#a3e635; font-weight:600; font-size:14px;">Video Meeting Link</p>
              <a href="{{.MeetingLink}}" style="color:#a3e635; font-size:16px; word-break:break-all;">{{.MeetingLink}}</a>
            </td>
          </tr>
          {{end}}
          <tr>
            <td style="padding:24px; text-align:center; border-top:1px solid #262626;">
              <p style="color:#737373; font-size:13px; margin:0;">
                If you need to reschedule, please contact us directly.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

// RenderConfirmation fills the fixed confirmation template.
func RenderConfirmation(data confirmationData) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering confirmation email: %w", err)
	}
	return buf.String(), nil
}
