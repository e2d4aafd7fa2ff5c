// Package notify sends transactional emails triggered by API requests.
//
// Email delivery never blocks a request and never changes its outcome: a
// submission that persisted is a success even if SMTP is down. Dispatch
// methods return immediately and deliver from a detached goroutine,
// logging failures instead of propagating them.
package notify

import (
	"sync"
	"time"

	"github.com/optimalsolutions/siteapi/internal/app/system/htmlsanitize"
	"github.com/optimalsolutions/siteapi/internal/app/system/mailer"
	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"go.uber.org/zap"
)

// Sender is the part of mailer.Mailer the dispatcher needs. Tests
// substitute a recording fake.
type Sender interface {
	Send(email mailer.Email) error
}

// Dispatcher sends notification emails in the background.
type Dispatcher struct {
	sender   Sender
	appName  string
	notifyTo string // Internal address for new-submission notifications
	baseURL  string // Public site URL for links in outbound email
	logger   *zap.Logger

	wg sync.WaitGroup
}

// New creates a Dispatcher. sender may be nil when mail is not
// configured; every dispatch method is then a no-op.
func New(sender Sender, appName, notifyTo, baseURL string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		appName:  appName,
		notifyTo: notifyTo,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// ContactSubmitted sends the internal notification and the submitter
// confirmation for a stored contact. Returns before any email is sent.
func (d *Dispatcher) ContactSubmitted(contact *models.Contact) {
	if d.sender == nil {
		return
	}

	if d.notifyTo != "" {
		d.dispatch(func() {
			text, html := mailer.ContactNotificationEmail(mailer.ContactNotificationEmailData{
				AppName:         d.appName,
				Name:            htmlsanitize.Sanitize(contact.Name),
				Email:           contact.Email,
				Company:         htmlsanitize.Sanitize(contact.Company),
				ServiceInterest: htmlsanitize.Sanitize(contact.ServiceInterest),
				Message:         contact.Message,
				MessageHTML:     htmlsanitize.TextToHTML(contact.Message),
				SubmittedAt:     contact.CreatedAt.Format(time.RFC1123),
				IPAddress:       contact.IPAddress,
			})
			if err := d.sender.Send(mailer.Email{
				To:       d.notifyTo,
				Subject:  "New contact form submission from " + contact.Name,
				TextBody: text,
				HTMLBody: html,
			}); err != nil {
				d.logger.Error("contact notification email failed",
					zap.String("contact_id", contact.ID.Hex()),
					zap.Error(err))
			}
		})
	}

	d.dispatch(func() {
		text, html := mailer.ContactConfirmationEmail(mailer.ContactConfirmationEmailData{
			AppName: d.appName,
			Name:    htmlsanitize.Sanitize(contact.Name),
		})
		if err := d.sender.Send(mailer.Email{
			To:       contact.Email,
			Subject:  "We received your message",
			TextBody: text,
			HTMLBody: html,
		}); err != nil {
			d.logger.Error("contact confirmation email failed",
				zap.String("contact_id", contact.ID.Hex()),
				zap.Error(err))
		}
	})
}

// NewsletterSubscribed sends the welcome email for a new or reactivated
// subscription. Returns before the email is sent.
func (d *Dispatcher) NewsletterSubscribed(sub *models.Subscriber) {
	if d.sender == nil {
		return
	}

	d.dispatch(func() {
		text, html := mailer.NewsletterWelcomeEmail(mailer.NewsletterWelcomeEmailData{
			AppName:        d.appName,
			UnsubscribeURL: d.baseURL + "/api/newsletter/unsubscribe?token=" + sub.UnsubscribeToken,
		})
		if err := d.sender.Send(mailer.Email{
			To:       sub.Email,
			Subject:  "Welcome to the " + d.appName + " newsletter",
			TextBody: text,
			HTMLBody: html,
		}); err != nil {
			d.logger.Error("newsletter welcome email failed",
				zap.String("email", sub.Email),
				zap.Error(err))
		}
	})
}

func (d *Dispatcher) dispatch(send func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		send()
	}()
}

// Wait blocks until every dispatched email has been attempted. Used by
// tests and by graceful shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
