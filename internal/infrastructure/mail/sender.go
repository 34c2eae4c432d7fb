// Package mail entrega los códigos OTP por email.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/avast/retry-go/v4"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Marketplace-api/internal/application/auth"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

var (
	_ auth.OTPSender = (*SMTPSender)(nil)
	_ auth.OTPSender = (*LogSender)(nil)
)

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif">
<h2>Su código de acceso</h2>
<p>Use este código para completar el inicio de sesión. Vence en {{.Minutes}} minutos.</p>
<p style="font-size:24px;font-weight:bold;letter-spacing:4px">{{.Code}}</p>
<p>Si no solicitó este código, ignore este mensaje.</p>
</body></html>`))

// SMTPConfig datos del servidor de correo.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Attempts uint
}

// dialer abstrae gomail.Dialer para poder probar el reintento.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender envía el OTP por SMTP, reintentando con backoff exponencial.
type SMTPSender struct {
	from     string
	attempts uint
	d        dialer
	log      *logger.Logger
}

// NewSMTPSender construye el sender sobre gomail.
func NewSMTPSender(cfg SMTPConfig, log *logger.Logger) *SMTPSender {
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	return &SMTPSender{
		from:     cfg.From,
		attempts: cfg.Attempts,
		d:        gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		log:      log.Named("mail"),
	}
}

// SendOTP arma el mensaje HTML y lo envía.
func (s *SMTPSender) SendOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	body, err := renderOTP(code, ttl)
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Su código de acceso")
	m.SetBody("text/html", body)

	return retry.Do(
		func() error { return s.d.DialAndSend(m) },
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.log.Warn().Err(err).Uint("attempt", n+1).Str("to", to).Msg("fallo envío de OTP, reintentando")
		}),
	)
}

// LogSender sólo registra el código en el log; se usa cuando no hay SMTP configurado.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender construye el sender de desarrollo.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.Named("mail")}
}

// SendOTP escribe el código en el log en nivel warn.
func (s *LogSender) SendOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	s.log.Warn().Str("to", to).Str("otp", code).Dur("ttl", ttl).Msg("SMTP no configurado, OTP sólo en log")
	return nil
}

func renderOTP(code string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, struct {
		Code    string
		Minutes int
	}{Code: code, Minutes: int(ttl.Minutes())})
	if err != nil {
		return "", fmt.Errorf("mail: plantilla otp: %w", err)
	}
	return buf.String(), nil
}
