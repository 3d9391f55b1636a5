package services

import (
	"context"
	"errors"
	"time"

	"fercullen.events/configs/configslog"
	"fercullen.events/models"
	"fercullen.events/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError özel servis hataları
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrInvalidRSVPStatus RSVPServiceError = "geçersiz LCV durumu: yalnızca 'accepted' veya 'declined' kabul edilir"
)

// RSVPSubmission bir LCV yanıtının girdisidir. Preferences ve Notes
// opsiyoneldir; nil ise mevcut değer korunur.
type RSVPSubmission struct {
	Status      string  `json:"status"`
	Preferences *string `json:"preferences"`
	Notes       *string `json:"notes"`
}

// IRSVPService LCV yanıtı işlemleri için arayüz.
type IRSVPService interface {
	SubmitRSVP(ctx context.Context, sn string, submission RSVPSubmission) (*models.Invitee, error)
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	repo    repositories.IInviteeRepository
	logRepo repositories.IInvitationLogRepository
}

// NewRSVPService yeni bir RSVPService örneği oluşturur.
func NewRSVPService() IRSVPService {
	return &RSVPService{
		repo:    repositories.NewInviteeRepository(),
		logRepo: repositories.NewInvitationLogRepository(),
	}
}

// SubmitRSVP bir davetlinin LCV yanıtını kaydeder.
// pending → accepted|declined geçişine ve accepted ⇄ declined yeniden
// gönderimine izin verilir; rsvp_submitted_at her gönderimde tazelenir.
// Tercihler yalnızca 'accepted' yanıtlarda saklanır, notlar her durumda.
func (s *RSVPService) SubmitRSVP(ctx context.Context, sn string, submission RSVPSubmission) (*models.Invitee, error) {
	status := models.RSVPStatus(submission.Status)
	if status != models.RSVPStatusAccepted && status != models.RSVPStatusDeclined {
		return nil, ErrInvalidRSVPStatus
	}

	invitee, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	invitee.RSVPStatus = status
	invitee.RSVPSubmittedAt = &now
	if status == models.RSVPStatusAccepted && submission.Preferences != nil {
		invitee.RSVPPreferences = *submission.Preferences
	}
	if submission.Notes != nil {
		invitee.RSVPNotes = *submission.Notes
	}

	if err := s.repo.Update(ctx, invitee); err != nil {
		configslog.Log.Error("SubmitRSVP: kayıt güncellenemedi", zap.String("sn", sn), zap.Error(err))
		return nil, ErrInviteeUpdateFailed
	}

	// Append-only denetim kaydı. error_message yalnızca başarısız
	// gönderimlerde doldurulur. Log yazılamazsa LCV yine de kaydedilmiş
	// durumdadır; hatayı yutup logluyoruz.
	logEntry := &models.InvitationLog{
		InviteeSN: sn,
		Email:     invitee.Email,
		Status:    "rsvp_" + string(status),
		SentAt:    now,
	}
	if err := s.logRepo.Append(ctx, logEntry); err != nil {
		configslog.Log.Warn("SubmitRSVP: log kaydı yazılamadı", zap.String("sn", sn), zap.Error(err))
	}

	configslog.SLog.Infof("LCV yanıtı kaydedildi: %s -> %s", sn, status)
	return invitee, nil
}

var _ IRSVPService = (*RSVPService)(nil)
