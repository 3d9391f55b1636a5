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

// InvitationSendServiceError özel servis hataları
type InvitationSendServiceError string

func (e InvitationSendServiceError) Error() string { return string(e) }

const (
	ErrInviteeEmailMissing  InvitationSendServiceError = "davetlinin e-posta adresi yok"
	ErrInvitationSendFailed InvitationSendServiceError = "davetiye e-postası gönderilemedi"
)

// IInvitationSendService davetiye gönderim aksı için arayüz.
type IInvitationSendService interface {
	SendInvitationByID(ctx context.Context, id uint, baseURL string) (*models.Invitee, error)
	SendInvitationBySN(ctx context.Context, sn string, baseURL string) (*models.Invitee, error)
}

// InvitationSendService IInvitationSendService arayüzünü uygular.
// Mail gönderimi dış bağımlılıktır; başarısızlığı davetli kaydını
// etkilemez, yalnızca log tablosuna işlenir.
type InvitationSendService struct {
	repo    repositories.IInviteeRepository
	logRepo repositories.IInvitationLogRepository
	mailer  IMailService
}

// NewInvitationSendService mail servisi enjekte edilerek oluşturulur.
func NewInvitationSendService(mailer IMailService) IInvitationSendService {
	return &InvitationSendService{
		repo:    repositories.NewInviteeRepository(),
		logRepo: repositories.NewInvitationLogRepository(),
		mailer:  mailer,
	}
}

// SendInvitationByID davetli ID'si ile davetiye gönderir.
func (s *InvitationSendService) SendInvitationByID(ctx context.Context, id uint, baseURL string) (*models.Invitee, error) {
	invitee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}
	return s.send(ctx, invitee, baseURL)
}

// SendInvitationBySN seri numarası ile davetiye gönderir.
func (s *InvitationSendService) SendInvitationBySN(ctx context.Context, sn string, baseURL string) (*models.Invitee, error) {
	invitee, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}
	return s.send(ctx, invitee, baseURL)
}

// send davetiye aksının geçişini uygular: not_sent → sent.
// Daha önce gönderilmiş davetiyenin yeniden gönderimi serbesttir;
// durum üzerinde idempotent olup yalnızca yeni bir log kaydı üretir.
func (s *InvitationSendService) send(ctx context.Context, invitee *models.Invitee, baseURL string) (*models.Invitee, error) {
	if invitee.Email == "" {
		return nil, ErrInviteeEmailMissing
	}

	now := time.Now().UTC()
	if err := s.mailer.SendInvitation(invitee, baseURL); err != nil {
		// Başarısız gönderim kayıt durumunu DEĞİŞTİRMEZ; sadece loglanır.
		configslog.Log.Error("send: davetiye gönderilemedi",
			zap.String("sn", invitee.SN), zap.String("email", invitee.Email), zap.Error(err))
		logEntry := &models.InvitationLog{
			InviteeSN:    invitee.SN,
			Email:        invitee.Email,
			Status:       models.LogStatusFailed,
			ErrorMessage: err.Error(),
			SentAt:       now,
		}
		if logErr := s.logRepo.Append(ctx, logEntry); logErr != nil {
			configslog.Log.Warn("send: başarısızlık logu yazılamadı", zap.String("sn", invitee.SN), zap.Error(logErr))
		}
		return nil, ErrInvitationSendFailed
	}

	invitee.InvitationSent = true
	invitee.InvitationSentAt = &now
	if err := s.repo.Update(ctx, invitee); err != nil {
		configslog.Log.Error("send: gönderim durumu güncellenemedi", zap.String("sn", invitee.SN), zap.Error(err))
		return nil, ErrInviteeUpdateFailed
	}

	logEntry := &models.InvitationLog{
		InviteeSN: invitee.SN,
		Email:     invitee.Email,
		Status:    models.LogStatusSent,
		SentAt:    now,
	}
	if err := s.logRepo.Append(ctx, logEntry); err != nil {
		configslog.Log.Warn("send: gönderim logu yazılamadı", zap.String("sn", invitee.SN), zap.Error(err))
	}

	configslog.SLog.Infof("Davetiye gönderildi: %s -> %s", invitee.SN, invitee.Email)
	return invitee, nil
}

var _ IInvitationSendService = (*InvitationSendService)(nil)
