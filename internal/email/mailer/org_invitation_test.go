// internal/email/mailer/org_invitation_test.go
package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvitationFallbackEscapesHTML(t *testing.T) {
	html, text := invitationFallback(InvitationTemplateData{
		OrganizationName: `Acme <script>alert("x")</script>`,
		OrganizationCode: "ACME01",
		InviteCode:       "ABCD1234",
		SignupURL:        "http://localhost:3000/signup-invite/ABCD1234",
		LoginURL:         "http://localhost:3000/login",
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "ABCD1234")
	assert.Contains(t, html, "http://localhost:3000/signup-invite/ABCD1234")

	// The plaintext body is not an HTML sink and keeps the raw name.
	assert.Contains(t, text, `Acme <script>alert("x")</script>`)
}
