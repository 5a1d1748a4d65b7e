package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"time"
)

// Composer renders the transactional mails and hands them to a Sender.
type Composer struct {
	sender      Sender
	frontendURL string
}

func NewComposer(sender Sender, frontendURL string) *Composer {
	return &Composer{
		sender:      sender,
		frontendURL: frontendURL,
	}
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6;">
    <div style="max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 8px;">
      <h2 style="color: #333;">Verify your email</h2>
      <p>Hi there,</p>
      <p>Thanks for signing up! Please verify your email address by clicking the button below:</p>
      <p style="text-align: center;">
        <a href="{{.Link}}" style="background-color: #4CAF50; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px;">Verify Email</a>
      </p>
      <p>If you did not create an account, you can safely ignore this email.</p>
      <p style="color: #999; font-size: 12px;">This link will expire in 1 hour.</p>
    </div>
  </body>
</html>`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6;">
    <div style="max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 8px;">
      <h2 style="color: #333;">Reset your password</h2>
      <p>Hi there,</p>
      <p>We received a request to reset your password. Click the button below to pick a new one:</p>
      <p style="text-align: center;">
        <a href="{{.Link}}" style="background-color: #2196F3; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px;">Reset Password</a>
      </p>
      <p>If you did not ask for a reset, you can safely ignore this email.</p>
      <p style="color: #999; font-size: 12px;">This link will expire in 1 hour.</p>
    </div>
  </body>
</html>`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6;">
    <div style="max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 8px;">
      <h2 style="color: #333;">Booking Confirmed</h2>
      <p>Hi {{.CustomerName}},</p>
      <p>Your booking has been created with the following details:</p>
      <div style="margin-top: 20px; padding: 10px; background-color: #f9f9f9; border-radius: 5px;">
        <p><strong>Service Provider:</strong> {{.ProviderName}}</p>
        <p><strong>Service:</strong> {{.ServiceName}}</p>
        <p><strong>Booking Date:</strong> {{.BookingDate}}</p>
      </div>
      <p style="text-align: center;">
        <a href="{{.Link}}" style="background-color: #4CAF50; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px;">View Your Booking</a>
      </p>
      <p>Thank you for choosing our services!</p>
    </div>
  </body>
</html>`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6;">
    <div style="max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 8px;">
      <h2 style="color: #333;">Reminder: Upcoming Booking</h2>
      <p>Hi {{.CustomerName}},</p>
      <p>This is a friendly reminder about your upcoming booking for the service:</p>
      <div style="margin-top: 20px; padding: 10px; background-color: #f9f9f9; border-radius: 5px;">
        <p><strong>Service Provider:</strong> {{.ProviderName}}</p>
        <p><strong>Service:</strong> {{.ServiceName}}</p>
        <p><strong>Booking Date:</strong> {{.BookingDate}}</p>
      </div>
      <p>Please make sure to be on time. You can review or cancel the booking by clicking the link below:</p>
      <p style="text-align: center;">
        <a href="{{.Link}}" style="background-color: #FF5722; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px;">View Your Booking</a>
      </p>
      <p>Thank you for choosing our services! We look forward to serving you.</p>
      <p style="color: #999; font-size: 12px;">This link will expire 1 hour before your booking time.</p>
    </div>
  </body>
</html>`))

// BookingMail is the denormalized data needed to render a booking email.
type BookingMail struct {
	BookingID    string
	CustomerName string
	ProviderName string
	ServiceName  string
	BookingDate  time.Time
}

func (c *Composer) SendVerification(to, tokenString string) error {
	link := fmt.Sprintf("%s/verify/verify-email?token=%s", c.frontendURL, url.QueryEscape(tokenString))
	body, err := render(verificationTmpl, map[string]string{"Link": link})
	if err != nil {
		return err
	}
	return c.sender.Send(to, "Please verify your email address", body)
}

func (c *Composer) SendPasswordReset(to, tokenString string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", c.frontendURL, url.QueryEscape(tokenString))
	body, err := render(passwordResetTmpl, map[string]string{"Link": link})
	if err != nil {
		return err
	}
	return c.sender.Send(to, "Reset your password", body)
}

func (c *Composer) SendBookingConfirmation(to string, mail BookingMail) error {
	body, err := render(confirmationTmpl, c.bookingData(mail))
	if err != nil {
		return err
	}
	return c.sender.Send(to, "Booking Confirmation", body)
}

func (c *Composer) SendBookingReminder(to string, mail BookingMail) error {
	body, err := render(reminderTmpl, c.bookingData(mail))
	if err != nil {
		return err
	}
	return c.sender.Send(to, "Reminder: Your Upcoming Booking", body)
}

func (c *Composer) bookingData(mail BookingMail) map[string]string {
	return map[string]string{
		"CustomerName": mail.CustomerName,
		"ProviderName": mail.ProviderName,
		"ServiceName":  mail.ServiceName,
		"BookingDate":  mail.BookingDate.Format("Mon, 02 Jan 2006 15:04"),
		"Link":         fmt.Sprintf("%s/view-booking/%s", c.frontendURL, mail.BookingID),
	}
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
