package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件账号
	Password string // 授权码
	From     string // 显示的发件人
}

// SendEmail 同步发送，调用方决定失败后如何补偿
func SendEmail(cfg SMTPConfig, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

func EmailCodeHTML(subject, code string, ttl time.Duration) string {
	return fmt.Sprintf(
		`<p>您好，</p><p>您正在Hive社区进行 <b>%s</b> 操作，验证码：<b style="font-size:18px;">%s</b></p><p>验证码 %d 分钟内有效，请勿转发给任何人。</p>`,
		subject, code, int(ttl.Minutes()))
}
