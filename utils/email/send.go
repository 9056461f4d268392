package email

import (
	"gopkg.in/gomail.v2"
)

/*
SendHtml 发送一封 HTML 邮件。textContent 是纯文本降级正文，
收件端不渲染 HTML 时展示它；为空则只带 HTML 正文。
*/
func SendHtml(email string, subject string, htmlContent string, textContent string) error {
	msg := gomail.NewMessage()

	msg.SetHeader("From", globalConfig.SMTP.UserName)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)

	if len(textContent) != 0 {
		msg.SetBody("text/plain", textContent)
		msg.AddAlternative("text/html", htmlContent)
	} else {
		msg.SetBody("text/html", htmlContent)
	}

	dialer := gomail.NewDialer(
		globalConfig.SMTP.Host,
		globalConfig.SMTP.Port,
		globalConfig.SMTP.UserName,
		globalConfig.SMTP.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}

	return nil
}
