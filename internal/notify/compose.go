package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Budget:</strong> {{.Budget}}</p>
<p><strong>Location:</strong> {{.Area}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

// Compose renders the owner notification for sub. Submission text is HTML-escaped.
func Compose(from, to string, sub *model.ContactSubmission) (Message, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, sub); err != nil {
		return Message{}, fmt.Errorf("render notification: %w", err)
	}
	return Message{
		From:    from,
		To:      to,
		Subject: "New Contact Form Submission from " + headerSafe.Replace(sub.Name),
		HTML:    buf.String(),
	}, nil
}
