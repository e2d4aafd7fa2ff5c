// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
)

// ContactNotificationEmailData contains the data for the internal
// notification sent when a contact form is submitted. The free-text
// fields must be sanitized by the caller before they land here; the
// HTML template renders MessageHTML without further escaping.
type ContactNotificationEmailData struct {
	AppName         string
	Name            string
	Email           string
	Company         string
	ServiceInterest string
	Message         string        // Plain-text message for the text part
	MessageHTML     template.HTML // Sanitized message for the HTML part
	SubmittedAt     string        // Formatted timestamp
	IPAddress       string
}

// ContactNotificationEmail generates both plain text and HTML versions of
// the new-submission notification for the site team.
func ContactNotificationEmail(data ContactNotificationEmailData) (textBody, htmlBody string) {
	textBody = "New contact form submission on " + data.AppName + "\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n"
	if data.Company != "" {
		textBody += "Company: " + data.Company + "\n"
	}
	if data.ServiceInterest != "" {
		textBody += "Service interest: " + data.ServiceInterest + "\n"
	}
	textBody += "Submitted: " + data.SubmittedAt + "\n\n" +
		"Message:\n" + data.Message + "\n"

	var buf bytes.Buffer
	contactNotificationHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ContactConfirmationEmailData contains the data for the confirmation
// sent back to the person who submitted the contact form.
type ContactConfirmationEmailData struct {
	AppName string
	Name    string
}

// ContactConfirmationEmail generates both plain text and HTML versions of
// the submitter-facing confirmation email.
func ContactConfirmationEmail(data ContactConfirmationEmailData) (textBody, htmlBody string) {
	textBody = "Hello " + data.Name + ",\n\n" +
		"Thank you for reaching out to " + data.AppName + ". " +
		"We received your message and a member of our team will get back to you " +
		"within one business day.\n\n" +
		"If your request is urgent, reply to this email and we will prioritize it."

	var buf bytes.Buffer
	contactConfirmationHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// NewsletterWelcomeEmailData contains the data for the welcome email sent
// on a new newsletter subscription.
type NewsletterWelcomeEmailData struct {
	AppName        string
	UnsubscribeURL string
}

// NewsletterWelcomeEmail generates both plain text and HTML versions of
// the newsletter welcome email.
func NewsletterWelcomeEmail(data NewsletterWelcomeEmailData) (textBody, htmlBody string) {
	textBody = "Welcome to the " + data.AppName + " newsletter!\n\n" +
		"You'll receive occasional updates about our work, new services, and " +
		"case studies. No spam, and you can leave at any time.\n\n" +
		"To unsubscribe, visit:\n" + data.UnsubscribeURL

	var buf bytes.Buffer
	newsletterWelcomeHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

var contactNotificationHTMLTmpl = template.Must(template.New("contact_notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Contact Submission</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New Contact Form Submission</h2>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="margin-bottom: 24px;">
                <tr>
                  <td style="padding: 6px 0; font-size: 14px; color: #71717a; width: 140px;">Name</td>
                  <td style="padding: 6px 0; font-size: 14px; color: #18181b;">{{.Name}}</td>
                </tr>
                <tr>
                  <td style="padding: 6px 0; font-size: 14px; color: #71717a;">Email</td>
                  <td style="padding: 6px 0; font-size: 14px; color: #18181b;">{{.Email}}</td>
                </tr>
                {{if .Company}}<tr>
                  <td style="padding: 6px 0; font-size: 14px; color: #71717a;">Company</td>
                  <td style="padding: 6px 0; font-size: 14px; color: #18181b;">{{.Company}}</td>
                </tr>{{end}}
                {{if .ServiceInterest}}<tr>
                  <td style="padding: 6px 0; font-size: 14px; color: #71717a;">Service interest</td>
                  <td style="padding: 6px 0; font-size: 14px; color: #18181b;">{{.ServiceInterest}}</td>
                </tr>{{end}}
                <tr>
                  <td style="padding: 6px 0; font-size: 14px; color: #71717a;">Submitted</td>
                  <td style="padding: 6px 0; font-size: 14px; color: #18181b;">{{.SubmittedAt}}</td>
                </tr>
                {{if .IPAddress}}<tr>
                  <td style="padding: 6px 0; font-size: 14px; color: #71717a;">IP address</td>
                  <td style="padding: 6px 0; font-size: 14px; color: #18181b;">{{.IPAddress}}</td>
                </tr>{{end}}
              </table>
              <h3 style="margin: 0 0 8px 0; font-size: 16px; font-weight: 600; color: #18181b;">Message</h3>
              <p style="margin: 0; padding: 16px; font-size: 15px; line-height: 1.6; color: #52525b; background-color: #fafafa; border-radius: 6px;">{{.MessageHTML}}</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var contactConfirmationHTMLTmpl = template.Must(template.New("contact_confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>We Received Your Message</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">Thanks for Reaching Out</h2>
              <p style="margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                Hello {{.Name}},
              </p>
              <p style="margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                We received your message and a member of our team will get back to you within one business day.
              </p>
              <p style="margin: 0; font-size: 14px; line-height: 1.6; color: #71717a;">
                If your request is urgent, reply to this email and we will prioritize it.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var newsletterWelcomeHTMLTmpl = template.Must(template.New("newsletter_welcome").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Welcome to the Newsletter</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.AppName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">Welcome Aboard</h2>
              <p style="margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                You'll receive occasional updates about our work, new services, and case studies. No spam, and you can leave at any time.
              </p>
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #a1a1aa; text-align: center;">
                Don't want these emails? <a href="{{.UnsubscribeURL}}" style="color: #4f46e5;">Unsubscribe</a>
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))
