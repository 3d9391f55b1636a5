package services

import (
	"fmt"
	"io"

	"fercullen.events/configs/configsapp"
	"fercullen.events/configs/configslog"
	"fercullen.events/models"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// IMailService davetiye e-postası gönderimi için arayüz.
// Çekirdek mantık yalnızca bu sözleşmeye bağımlıdır; SMTP detayları
// implementasyonda kalır. Testlerde sahte (fake) implementasyon kullanılır.
type IMailService interface {
	SendInvitation(invitee *models.Invitee, baseURL string) error
}

// MailService IMailService arayüzünü gomail/SMTP ile uygular.
// Uygulama başlangıcında bir kez oluşturulur ve ihtiyaç duyan
// servislere enjekte edilir; global transporter yoktur.
type MailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailService yapılandırmadan bir SMTP mail servisi oluşturur.
func NewMailService(cfg *configsapp.Config) IMailService {
	dialer := gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)
	dialer.SSL = cfg.MailEncryption == "ssl"
	return &MailService{dialer: dialer, from: cfg.MailFrom}
}

// RSVPURL davetlinin LCV sayfası adresini üretir.
func RSVPURL(baseURL, sn string) string {
	return fmt.Sprintf("%s/rsvp/%s", baseURL, sn)
}

// SendInvitation QR kodlu HTML davetiye e-postasını gönderir.
func (s *MailService) SendInvitation(invitee *models.Invitee, baseURL string) error {
	if invitee.Email == "" {
		return fmt.Errorf("davetlinin e-posta adresi yok: %s", invitee.SN)
	}

	rsvpLink := RSVPURL(baseURL, invitee.SN)
	qrPNG, err := qrcode.Encode(rsvpLink, qrcode.Medium, 300)
	if err != nil {
		configslog.Log.Error("SendInvitation: QR kodu üretilemedi", zap.String("sn", invitee.SN), zap.Error(err))
		return fmt.Errorf("QR kodu üretilemedi: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", invitee.Email)
	m.SetHeader("Subject", "Fercullen Irish Whiskey Launch - Invitation")
	m.SetBody("text/html", invitationHTML(invitee, rsvpLink))
	m.Embed("qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qrPNG)
		return err
	}))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP gönderimi başarısız: %w", err)
	}
	return nil
}

// invitationHTML davetiye e-postasının HTML gövdesini üretir.
// Misafire dönük içerik etkinlik diliyle (İngilizce) yazılır.
func invitationHTML(invitee *models.Invitee, rsvpLink string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:0;background-color:#0a0f1a;color:#ffffff;font-family:'Segoe UI',Tahoma,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background-color:#1a1f2e;border:1px solid #2a2f3e;">
    <div style="background:linear-gradient(135deg,#01315c 0%%,#bc9254 50%%,#f9d8a4 100%%);padding:40px 20px;text-align:center;">
      <h1 style="margin:0;font-size:32px;">Fercullen Irish Whiskey</h1>
      <p style="margin:10px 0 0 0;font-size:18px;">Launch Event Invitation</p>
    </div>
    <div style="padding:40px 30px;line-height:1.7;color:#e0e0e0;">
      <p style="font-size:20px;color:#bc9254;font-weight:600;">Dear %s,</p>
      <p>You are cordially invited to the Fercullen Irish Whiskey launch event.
      Please confirm your attendance using the link below.</p>
      <p style="text-align:center;margin:30px 0;">
        <a href="%s" style="background-color:#bc9254;color:#0a0f1a;padding:14px 28px;border-radius:6px;text-decoration:none;font-weight:bold;">RSVP Now</a>
      </p>
      <div style="text-align:center;margin:35px 0;padding:30px;background-color:#2a2f3e;border-radius:12px;">
        <h3 style="color:#bc9254;">Your personal QR code</h3>
        <img src="cid:qr.png" alt="RSVP QR code" width="300" height="300"/>
        <p style="color:#9a9fae;font-size:13px;">Invitation number: %s</p>
      </div>
      <p style="font-size:13px;color:#9a9fae;">If the button does not work, open this address: %s</p>
    </div>
  </div>
</body>
</html>`, invitee.Name, rsvpLink, invitee.SN, rsvpLink)
}

var _ IMailService = (*MailService)(nil)
