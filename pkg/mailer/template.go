package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
	Year        int
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
</head>
<body style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #f1f5f9; padding: 40px 20px; margin: 0; color: #0f172a;">
    <table style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
        <tr>
            <td style="padding: 30px 40px 20px 40px;">
                <h2 style="margin: 0 0 10px 0; font-size: 26px; color: #111827;">&#128233; You've Got a New Message</h2>
                <p style="margin: 0; color: #6b7280; font-size: 15px;">This message was submitted through your portfolio contact form.</p>
            </td>
        </tr>
        <tr>
            <td style="padding: 0 40px 30px 40px;">
                <table width="100%" style="margin-top: 20px;">
                    <tr>
                        <td style="padding: 10px 0; font-size: 16px;">
                            <strong style="color: #1e293b;">Name:</strong><br/>
                            <span style="color: #334155;">{{.SenderName}}</span>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 10px 0; font-size: 16px;">
                            <strong style="color: #1e293b;">Email:</strong><br/>
                            <a href="mailto:{{.SenderEmail}}" style="color: #3b82f6; text-decoration: none;">{{.SenderEmail}}</a>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 10px 0; font-size: 16px;">
                            <strong style="color: #1e293b;">Message:</strong><br/>
                            <div style="margin-top: 10px; padding: 15px 20px; background-color: #f8fafc; border-left: 4px solid #3b82f6; border-radius: 6px; color: #475569; font-size: 15px; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</div>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
        <tr>
            <td style="background-color: #f9fafb; text-align: center; padding: 25px 40px; font-size: 13px; color: #94a3b8;">
                Sent via your portfolio | All rights reserved &copy; {{.Year}}
            </td>
        </tr>
    </table>
</body>
</html>`

// BuildContactMessage composes the mail for one contact form submission.
// The sender and recipient are fixed site-owner addresses; Reply-To points
// at the submitter so a direct reply reaches them instead of the relay
// account. Text and HTML parts carry identical content.
func BuildContactMessage(fromEmail, fromName, to string, data ContactEmailData) (*Message, error) {
	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	text := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s\n",
		data.SenderName, data.SenderEmail, data.Message)

	return &Message{
		FromEmail: fromEmail,
		FromName:  fromName,
		To:        to,
		ReplyTo:   data.SenderEmail,
		Subject:   fmt.Sprintf("📨 New Message from %s", data.SenderName),
		Text:      text,
		HTML:      html.String(),
	}, nil
}
