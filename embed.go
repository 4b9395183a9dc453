package orgkit

import "embed"

// EmailFS holds the html and plaintext email templates shipped with the
// binary.
//
//go:embed templates/emails
var EmailFS embed.FS
