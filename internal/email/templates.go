package email

import (
	"bytes"
	"html/template"
)

// resetPasswordTemplate is compiled in rather than loaded from disk: it is
// the only transactional mail the system sends.
const resetPasswordTemplate = `
<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10b981;">Password Reset Request</h2>
  <p>Hello,</p>
  <p>You requested to reset your password. Click the button below to reset it:</p>
  <div style="margin: 30px 0;">
    <a href="{{.ResetLink}}"
       style="background-color: #10b981; color: white; padding: 12px 24px;
              text-decoration: none; border-radius: 5px; display: inline-block;">
      Reset Password
    </a>
  </div>
  <p>Or copy and paste this link in your browser:</p>
  <p style="color: #666; word-break: break-all;">{{.ResetLink}}</p>
  <p style="color: #666; font-size: 14px; margin-top: 30px;">
    This link will expire in {{.ExpiryText}}. If you didn't request this, please ignore this email.
  </p>
</div>
`

var resetTmpl = template.Must(template.New("reset_password").Parse(resetPasswordTemplate))

// RenderResetPassword renders the reset mail body.
func RenderResetPassword(data ResetPasswordData) (string, error) {
	var buf bytes.Buffer
	if err := resetTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
