package auth

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Transactional email bodies.

var verificationEmailTmpl = template.Must(template.New("verification").Parse(`<html>
<body>
<p>Hi {{.Username}},</p>
<p>Click the link below before {{.Expiry}} to verify your email:</p>
<p><a href="{{.Link}}">Confirm your account</a></p>
<p>Need help, or have questions? Just reply to this email, we'd love to help.</p>
</body>
</html>`))

var resetEmailTmpl = template.Must(template.New("reset").Parse(`<html>
<body>
<p>Hi {{.Username}},</p>
<p>Click the link below to reset your password before {{.Expiry}}:</p>
<p><a href="{{.Link}}">Reset your password</a></p>
<p>Not you? Someone might have mistakenly entered your email. Please ignore this message in that case.</p>
</body>
</html>`))

type emailTemplateData struct {
	Username string
	Link     string
	Expiry   string
}

func renderVerificationEmail(username, link string, expiry time.Time) (string, error) {
	return renderEmail(verificationEmailTmpl, username, link, expiry)
}

func renderResetEmail(username, link string, expiry time.Time) (string, error) {
	return renderEmail(resetEmailTmpl, username, link, expiry)
}

func renderEmail(tmpl *template.Template, username, link string, expiry time.Time) (string, error) {
	var sb strings.Builder
	err := tmpl.Execute(&sb, emailTemplateData{
		Username: username,
		Link:     link,
		Expiry:   expiry.UTC().Format(time.RFC1123),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render email body: %w", err)
	}
	return sb.String(), nil
}
