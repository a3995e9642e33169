package service

import (
	"context"

	"Hive_Social/internal/pkg"
	"Hive_Social/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

var emailSubjects = map[string]string{
	"register": "注册验证码",
	"reset":    "密码重置验证码",
}

// SendCode 发送验证码：先落pending键，邮件发出后转confirmed
func (s *EmailService) SendCode(ctx context.Context, scope, email string) error {
	subject, ok := emailSubjects[scope]
	if !ok {
		return pkg.Validation("invalid scope")
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	if err = s.rds.SetCodePending(ctx, scope, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML(subject, code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, subject, html); err != nil {
		return err
	}

	if err = s.rds.ConfirmCode(ctx, scope, email); err != nil {
		// 确认失败则清掉pending键
		_ = s.rds.DeleteCodePending(ctx, scope, email)
		return err
	}

	return nil
}

// VerifyCode 校验验证码并一次性删除
func (s *EmailService) VerifyCode(ctx context.Context, scope, email, code string) (bool, error) {
	val, err := s.rds.GetEmailCode(ctx, scope, email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteEmailCode(ctx, scope, email); err != nil {
		return false, err
	}
	return true, nil
}
