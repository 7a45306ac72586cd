package email

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

// ConsultationInvitation carries the fields substituted into the email an
// alumnus receives when the registrar approves a student's request.
type ConsultationInvitation struct {
	AlumniName          string
	StudentName         string
	StudentEmail        string
	StudentContact      string
	ResearchTitle       string
	ResearchDescription string
	ConsultationNeeds   string
	ExpectedDuration    string
	SenderName          string
}

var invitationHTML = template.Must(template.New("invitation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #f9f9f9; padding: 20px; border-radius: 8px;">
  <div style="text-align: center; margin-bottom: 30px; border-bottom: 3px solid #B23B3B; padding-bottom: 20px;">
    <h1 style="color: #B23B3B; margin: 0; font-size: 24px;">Alumni Research Consultation Request</h1>
    <p style="color: #666; margin: 10px 0 0 0;">A student would like your expertise</p>
  </div>

  <div style="background-color: white; padding: 20px; border-radius: 6px; margin-bottom: 20px; border-left: 4px solid #FF7F27;">
    <h2 style="color: #B23B3B; margin-top: 0;">Hello {{.AlumniName}},</h2>
    <p style="color: #333; line-height: 1.6; margin: 15px 0;">
      We have a student who believes your expertise would be valuable for their research project and would like to request your consultation.
    </p>
  </div>

  <div style="background-color: #FDF4DD; padding: 20px; border-radius: 6px; margin-bottom: 20px; border: 2px solid #FF7F27;">
    <h3 style="color: #B23B3B; margin-top: 0;">Research Project Details</h3>

    <div style="margin-bottom: 15px;">
      <p style="color: #A03E2D; font-weight: bold; margin: 0 0 5px 0;">Research Title</p>
      <p style="color: #333; margin: 0; font-size: 15px;">{{.ResearchTitle}}</p>
    </div>
{{if .ResearchDescription}}
    <div style="margin-bottom: 15px;">
      <p style="color: #A03E2D; font-weight: bold; margin: 0 0 5px 0;">Research Description</p>
      <p style="color: #333; margin: 0; font-size: 15px; white-space: pre-wrap;">{{.ResearchDescription}}</p>
    </div>
{{end}}
    <div style="margin-bottom: 15px;">
      <p style="color: #A03E2D; font-weight: bold; margin: 0 0 5px 0;">How Your Expertise is Needed</p>
      <p style="color: #333; margin: 0; font-size: 15px; white-space: pre-wrap;">{{.ConsultationNeeds}}</p>
    </div>
{{if .ExpectedDuration}}
    <div style="margin-bottom: 15px;">
      <p style="color: #A03E2D; font-weight: bold; margin: 0 0 5px 0;">Duration</p>
      <p style="color: #333; margin: 0; font-size: 15px;">{{.ExpectedDuration}}</p>
    </div>
{{end}}
    <div style="background-color: white; padding: 15px; border-radius: 4px; margin-top: 15px;">
      <p style="color: #A03E2D; font-weight: bold; margin: 0 0 5px 0;">Student Contact Information</p>
      <p style="color: #333; margin: 5px 0; font-size: 14px;"><strong>Name:</strong> {{.StudentName}}</p>
      <p style="color: #333; margin: 5px 0; font-size: 14px;"><strong>Email:</strong> <a href="mailto:{{.StudentEmail}}" style="color: #B23B3B; text-decoration: none;">{{.StudentEmail}}</a></p>
{{if .StudentContact}}      <p style="color: #333; margin: 5px 0; font-size: 14px;"><strong>Contact:</strong> {{.StudentContact}}</p>
{{end}}    </div>
  </div>

  <div style="background-color: white; padding: 20px; border-radius: 6px; border-left: 4px solid #A03E2D;">
    <h3 style="color: #B23B3B; margin-top: 0;">Next Steps</h3>
    <p style="color: #333; line-height: 1.6;">
      If you're interested in supporting this student's research, please reach out directly to them using the email address above. If you have any questions or concerns, feel free to contact your school registrar.
    </p>
  </div>

  <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; color: #999; font-size: 12px;">
    <p style="margin: 5px 0;">This is an automated message from the Alumni Tracking System</p>
    <p style="margin: 5px 0;">Sent on behalf of {{.SenderName}}</p>
  </div>
</div>
`))

var invitationText = texttemplate.Must(texttemplate.New("invitation_text").Parse(`Alumni Research Consultation Request

Hello {{.AlumniName}},

We have a student who believes your expertise would be valuable for their research project and would like to request your consultation.

Research Project Details:
- Title: {{.ResearchTitle}}
{{- if .ResearchDescription}}
- Description: {{.ResearchDescription}}
{{- end}}
- How Your Expertise is Needed: {{.ConsultationNeeds}}
{{- if .ExpectedDuration}}
- Duration: {{.ExpectedDuration}}
{{- end}}
- Student Name: {{.StudentName}}
- Student Email: {{.StudentEmail}}
{{- if .StudentContact}}
- Student Contact: {{.StudentContact}}
{{- end}}

If you're interested in supporting this student's research, please reach out directly to them. If you have any questions, contact your school registrar.

Thank you,
{{.SenderName}}
`))

// RenderConsultationInvitation renders the subject and both bodies of the
// consultation email sent to an alumnus.
func RenderConsultationInvitation(data ConsultationInvitation) (subject, htmlBody, textBody string, err error) {
	subject = fmt.Sprintf("Research Consultation Request from %s: %s", data.StudentName, data.ResearchTitle)

	var html bytes.Buffer
	if err = invitationHTML.Execute(&html, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render invitation html: %w", err)
	}
	var text bytes.Buffer
	if err = invitationText.Execute(&text, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render invitation text: %w", err)
	}
	return subject, html.String(), text.String(), nil
}
