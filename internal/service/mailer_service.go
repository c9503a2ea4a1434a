package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/radion-x/ODI-Aaron-3/internal/config"
	"github.com/radion-x/ODI-Aaron-3/internal/model"
)

// MailerService dispatches the transactional summary emails over SMTP. Two
// templates exist: the operator-facing summary includes every individual
// response, the user-facing summary deliberately omits them.
type MailerService struct {
	config *config.SMTPConfig
	dialer *gomail.Dialer

	operatorTmpl *template.Template
	userTmpl     *template.Template
}

// NewMailerService creates a new mailer service
func NewMailerService(cfg *config.SMTPConfig) *MailerService {
	return &MailerService{
		config:       cfg,
		dialer:       gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password),
		operatorTmpl: template.Must(template.New("operator").Parse(operatorEmailTemplate)),
		userTmpl:     template.Must(template.New("user").Parse(userEmailTemplate)),
	}
}

// IsEnabled returns true if an SMTP relay is configured
func (s *MailerService) IsEnabled() bool {
	return s.config.IsEnabled()
}

type emailData struct {
	User         model.UserDetails
	Result       model.AssessmentResult
	Observation  template.HTML
	CompletedAt  string
	ScoreSummary string
}

func (s *MailerService) newEmailData(user model.UserDetails, result model.AssessmentResult, observation string) emailData {
	// Preserve the observation's paragraph breaks in HTML
	escaped := template.HTMLEscapeString(observation)
	html := strings.ReplaceAll(escaped, "\n", "<br>")

	return emailData{
		User:         user,
		Result:       result,
		Observation:  template.HTML(html),
		CompletedAt:  result.CompletedAt.Format("2 Jan 2006 15:04 MST"),
		ScoreSummary: fmt.Sprintf("%d / %d", result.TotalScore, result.MaxScore),
	}
}

// SendOperatorSummary emails the admin-facing submission summary, including
// per-question responses, to the configured operator recipient.
func (s *MailerService) SendOperatorSummary(user model.UserDetails, result model.AssessmentResult, observation string) error {
	if s.config.OperatorRecipient == "" {
		return fmt.Errorf("operator recipient address not configured")
	}

	subject := fmt.Sprintf("Modified Oswestry Disability Index Summary: %s - Score: %d/%d",
		user.Name, result.TotalScore, result.MaxScore)
	return s.send(s.config.OperatorRecipient, subject, s.operatorTmpl, s.newEmailData(user, result, observation))
}

// SendUserSummary emails the respondent their own results, without the raw
// responses.
func (s *MailerService) SendUserSummary(user model.UserDetails, result model.AssessmentResult, observation string) error {
	if user.Email == "" {
		return fmt.Errorf("user email address is empty")
	}

	subject := "Your Modified Oswestry Disability Index Summary"
	return s.send(user.Email, subject, s.userTmpl, s.newEmailData(user, result, observation))
}

func (s *MailerService) send(to, subject string, tmpl *template.Template, data emailData) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.config.Sender, "Assessment Admin")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

const operatorEmailTemplate = `
<body style="margin: 0; padding: 0; background-color: #f4f7f6; font-family: Arial, sans-serif;">
  <table align="center" border="0" cellpadding="0" cellspacing="0" width="100%" style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
    <tr>
      <td style="padding: 30px 40px; border-bottom: 1px solid #e0e0e0;">
        <h1 style="color: #34495e; font-size: 24px; margin: 0; text-align: center;">New Assessment Submission</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 30px 40px;">
        <h2 style="color: #2c3e50; font-size: 20px;">User Details</h2>
        <p style="color: #555; font-size: 16px; margin: 5px 0;"><strong>Name:</strong> {{.User.Name}}</p>
        <p style="color: #555; font-size: 16px; margin: 5px 0;"><strong>Email:</strong> {{.User.Email}}</p>

        <h2 style="color: #2c3e50; font-size: 20px; margin-top: 30px;">Assessment Summary</h2>
        <p style="color: #555; font-size: 16px; margin: 5px 0;"><strong>Total Score:</strong> {{.ScoreSummary}}</p>
        <p style="color: #555; font-size: 16px; margin: 5px 0;"><strong>Severity Level:</strong> {{.Result.SeverityLevel}}</p>
        <p style="color: #555; font-size: 16px; margin: 5px 0;"><strong>Completed At:</strong> {{.CompletedAt}}</p>

        <h3 style="color: #2c3e50; font-size: 18px; margin-top: 25px; border-bottom: 1px solid #ecf0f1; padding-bottom: 5px;">Individual Responses</h3>
        <table style="width: 100%; border-collapse: collapse; font-size: 14px;">
          <thead>
            <tr>
              <th style="text-align: left; padding: 8px; border-bottom: 1px solid #ddd; background-color: #f9f9f9;">Question ID</th>
              <th style="text-align: left; padding: 8px; border-bottom: 1px solid #ddd; background-color: #f9f9f9;">Value</th>
              <th style="text-align: left; padding: 8px; border-bottom: 1px solid #ddd; background-color: #f9f9f9;">Score</th>
            </tr>
          </thead>
          <tbody>
            {{range .Result.Responses}}
            <tr>
              <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.QuestionID}}</td>
              <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Value}}</td>
              <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Score}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>

        <h2 style="color: #2c3e50; font-size: 20px; margin-top: 30px;">AI Observations</h2>
        <div style="background-color: #f8f9fa; border-left: 4px solid #7f8c8d; padding: 15px; border-radius: 4px;">
          <p style="color: #333; font-size: 15px; line-height: 1.7; margin: 0;">{{.Observation}}</p>
        </div>
      </td>
    </tr>
    <tr>
      <td style="padding: 20px 40px; text-align: center; font-size: 12px; color: #777; border-top: 1px solid #e0e0e0;">
        <p style="margin:0;">This is an automated notification.</p>
      </td>
    </tr>
  </table>
</body>
`

const userEmailTemplate = `
<body style="margin: 0; padding: 0; background-color: #f4f7f6; font-family: Arial, sans-serif;">
  <table align="center" border="0" cellpadding="0" cellspacing="0" width="100%" style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
    <tr>
      <td style="padding: 30px 40px; background-color: #2c3e50; border-top-left-radius: 8px; border-top-right-radius: 8px;">
        <h1 style="color: #ffffff; font-size: 24px; margin: 0; text-align: center;">Your Assessment Summary</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 30px 40px;">
        <p style="color: #333; font-size: 16px;">Hello {{.User.Name}},</p>
        <p style="color: #555; font-size: 16px;">Thank you for completing the Modified Oswestry Disability Index. Here is a summary of your results:</p>

        <div style="background-color: #f9f9f9; padding: 20px; border-radius: 6px; margin-bottom: 25px;">
          <h2 style="color: #2c3e50; font-size: 20px; margin-top: 0;">Assessment Results</h2>
          <p style="color: #555; font-size: 16px; margin: 8px 0;"><strong>Total Score:</strong> {{.ScoreSummary}}</p>
          <p style="color: #555; font-size: 16px; margin: 8px 0;"><strong>Severity Level:</strong> {{.Result.SeverityLevel}}</p>
        </div>

        <div style="background-color: #f9f9f9; padding: 20px; border-radius: 6px; margin-bottom: 25px;">
          <h2 style="color: #2c3e50; font-size: 20px; margin-top: 0;">AI Observations</h2>
          <p style="color: #555; font-size: 15px; line-height: 1.7; margin: 0;">{{.Observation}}</p>
        </div>

        <p style="color: #555; font-size: 16px; margin-top: 30px;">If you have any questions or wish to discuss your results further, please do not hesitate to contact our clinic.</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 30px 40px; text-align: center; font-size: 14px; color: #555; border-top: 1px solid #e0e0e0; background-color: #f9f9f9;">
        <p style="margin: 5px 0;"><strong>Head Office:</strong> Melbourne Orthopaedic Group, 33 The Avenue, Windsor VIC 3181</p>
        <p style="margin: 5px 0;"><strong>Email:</strong> <a href="mailto:Admin.Buckland@mog.com.au" style="color: #1abc9c; text-decoration: none;">Admin.Buckland@mog.com.au</a></p>
        <p style="margin: 5px 0;"><strong>Phone:</strong> +61 3 9573 9691</p>
        <p style="margin-top: 20px; font-size: 12px; color: #999;">This email was sent from an automated system. Please do not reply directly.</p>
      </td>
    </tr>
  </table>
</body>
`
