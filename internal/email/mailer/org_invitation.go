// internal/email/mailer/org_invitation.go
package mailer

import (
	"fmt"
	"html/template"

	"github.com/bitloft/orgkit/internal/email"
)

// InvitationTemplateData contains data for the organization invite email.
type InvitationTemplateData struct {
	OrganizationName string
	OrganizationCode string
	InviteCode       string
	SignupURL        string
	LoginURL         string
}

// invitationFallback builds the inline bodies used when the org_invitation
// template group is not shipped. Every interpolated field is HTML-escaped in
// the HTML body.
func invitationFallback(data InvitationTemplateData) (html, text string) {
	html = fmt.Sprintf(
		`<p>You have been invited to join <strong>%s</strong>.</p>
<p>Your invite code is <strong>%s</strong> (organization code %s).</p>
<p><a href="%s">Create your account</a> or <a href="%s">log in</a> if you already have one.</p>
<p>This invite expires in 7 days.</p>`,
		template.HTMLEscapeString(data.OrganizationName),
		template.HTMLEscapeString(data.InviteCode),
		template.HTMLEscapeString(data.OrganizationCode),
		template.HTMLEscapeString(data.SignupURL),
		template.HTMLEscapeString(data.LoginURL),
	)

	text = fmt.Sprintf(
		"You have been invited to join %s.\nInvite code: %s (organization code %s)\nSign up: %s\nLog in: %s\nThis invite expires in 7 days.\n",
		data.OrganizationName, data.InviteCode, data.OrganizationCode, data.SignupURL, data.LoginURL,
	)

	return html, text
}

// SendOrgInvitation sends an organization invite to one address. When the
// org_invitation template group is not shipped, a plain inline body carrying
// the same fields is sent instead.
func SendOrgInvitation(s *email.Service, to string, data InvitationTemplateData) error {
	fallbackHTML, fallbackText := invitationFallback(data)

	emailData := email.EmailData{
		To:           to,
		FromName:     data.OrganizationName,
		Subject:      fmt.Sprintf("You've been invited to join %s", data.OrganizationName),
		TemplateName: "org_invitation",
		TemplateData: data,
		FallbackHTML: fallbackHTML,
		FallbackText: fallbackText,
	}

	return s.SendEmail(emailData)
}
