package mailer

import (
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/epitechproject1/time-manager-staging/config"
)

// Sender 验证码通知发送能力
// 业务服务只依赖该接口；SMTP 细节由实现承担
type Sender interface {
	SendClockValidationCode(to, firstName, code, eventType string, expiresAt time.Time) error
	SendPasswordResetCode(to, firstName, code string, expiresAt time.Time) error
}

// smtpSender 基于 gomail 的 SMTP 实现
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender 创建 SMTP 发送器
func NewSMTPSender(cfg *config.MailConfig) Sender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendClockValidationCode 发送打卡验证码邮件
func (s *smtpSender) SendClockValidationCode(to, firstName, code, eventType string, expiresAt time.Time) error {
	eventLabel := "début de shift"
	if eventType == "CLOCK_OUT" {
		eventLabel = "fin de shift"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Code de validation — %s · Time Manager", eventLabel))
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Bonjour %s,</p>
<p>Votre code de validation (%s) :</p>
<p style="font-size:24px;font-weight:bold;letter-spacing:4px">%s</p>
<p>Ce code expire à %s.</p>`,
		firstName, eventLabel, code, expiresAt.Format("15:04:05"),
	))

	return s.dialer.DialAndSend(m)
}

// SendPasswordResetCode 发送密码重置码邮件
func (s *smtpSender) SendPasswordResetCode(to, firstName, code string, expiresAt time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Réinitialisation du mot de passe · Time Manager")
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Bonjour %s,</p>
<p>Votre code de réinitialisation :</p>
<p style="font-size:24px;font-weight:bold;letter-spacing:4px">%s</p>
<p>Ce code expire à %s. Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.</p>`,
		firstName, code, expiresAt.Format("15:04:05"),
	))

	return s.dialer.DialAndSend(m)
}
