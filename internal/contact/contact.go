// Package contact turns the contact form into a mailto: hand-off to the
// reader's mail client.
package contact

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/san-kum/folio/internal/anim"
)

const (
	DefaultButtonLabel = "Send Message"
	AckButtonLabel     = "✓ Opening Email Client..."
	// DefaultAckDuration is how long the acknowledgment stays on the button
	// before the form resets.
	DefaultAckDuration = 3 * time.Second
)

var ErrNoRecipient = errors.New("contact: recipient address is empty")

// Form holds the submitted field values. Values are not validated.
type Form struct {
	Name    string
	Email   string
	Message string
}

func (f Form) Subject() string {
	return "Portfolio Contact from " + f.Name
}

func (f Form) Body() string {
	return "Name: " + f.Name + "\r\n" +
		"Email: " + f.Email + "\r\n" +
		"\r\n" +
		"Message:\r\n" + f.Message
}

// MailtoURI builds the mailto: link for f with an encoded subject and body.
func MailtoURI(recipient string, f Form) (string, error) {
	if strings.TrimSpace(recipient) == "" {
		return "", ErrNoRecipient
	}
	return "mailto:" + recipient +
		"?subject=" + encodeComponent(f.Subject()) +
		"&body=" + encodeComponent(f.Body()), nil
}

// encodeComponent percent-encodes s for a URI query value, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Opener hands a URI to whatever handles it on this machine.
type Opener interface {
	Open(uri string) error
}

// Bridge submits forms and tracks the temporary acknowledgment on the
// submit button.
type Bridge struct {
	recipient string
	opener    Opener
	clock     anim.Clock
	ackFor    time.Duration
	ackUntil  time.Time
	acking    bool
}

func NewBridge(recipient string, opener Opener, clock anim.Clock) *Bridge {
	return &Bridge{
		recipient: recipient,
		opener:    opener,
		clock:     clock,
		ackFor:    DefaultAckDuration,
	}
}

// Submit builds the mailto: URI and hands it to the opener. The button is
// acknowledged even when the opener fails; there is no way to learn whether
// a mail client actually picked the link up. The opener's error is returned
// for logging.
func (b *Bridge) Submit(f Form) (string, error) {
	uri, err := MailtoURI(b.recipient, f)
	if err != nil {
		return "", err
	}
	b.acking = true
	b.ackUntil = b.clock.Now().Add(b.ackFor)
	if err := b.opener.Open(uri); err != nil {
		return uri, err
	}
	return uri, nil
}

// Acknowledging reports whether the button currently shows the
// acknowledgment.
func (b *Bridge) Acknowledging() bool { return b.acking }

// Tick ends an expired acknowledgment. It returns true exactly once per
// submission, when the form should be reset.
func (b *Bridge) Tick() bool {
	if !b.acking || b.clock.Now().Before(b.ackUntil) {
		return false
	}
	b.acking = false
	return true
}

// Remaining is the time left on the acknowledgment.
func (b *Bridge) Remaining() time.Duration {
	if !b.acking {
		return 0
	}
	d := b.ackUntil.Sub(b.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

func (b *Bridge) ButtonLabel() string {
	if b.acking {
		return AckButtonLabel
	}
	return DefaultButtonLabel
}
