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

// CheckInServiceError özel servis hataları
type CheckInServiceError string

func (e CheckInServiceError) Error() string { return string(e) }

const (
	ErrAlreadyCheckedIn      CheckInServiceError = "davetli zaten giriş yapmış"
	ErrCannotCheckInDeclined CheckInServiceError = "LCV yanıtı 'declined' olan davetli giriş yapamaz"
)

// ICheckInService etkinlik girişi (check-in) işlemleri için arayüz.
type ICheckInService interface {
	CheckInBySN(ctx context.Context, sn string) (*models.Invitee, error)
	CheckInByID(ctx context.Context, id uint) (*models.Invitee, error)
}

// CheckInService ICheckInService arayüzünü uygular.
type CheckInService struct {
	repo repositories.IInviteeRepository
}

// NewCheckInService yeni bir CheckInService örneği oluşturur.
func NewCheckInService() ICheckInService {
	return &CheckInService{repo: repositories.NewInviteeRepository()}
}

// CheckInBySN seri numarası ile giriş yapar.
func (s *CheckInService) CheckInBySN(ctx context.Context, sn string) (*models.Invitee, error) {
	invitee, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}
	return s.checkIn(ctx, invitee)
}

// CheckInByID davetli ID'si ile giriş yapar (admin paneli yolu).
func (s *CheckInService) CheckInByID(ctx context.Context, id uint) (*models.Invitee, error) {
	invitee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}
	return s.checkIn(ctx, invitee)
}

// checkIn giriş durum makinesini uygular. Ön koşullar sırasıyla:
//  1. Zaten giriş yapmışsa reddet.
//  2. LCV 'declined' ise reddet.
//  3. LCV 'pending' ise otomatik kabul et (walk-in yolu: giriş, kabul anlamına gelir).
//  4. Girişi işaretle. Geri alma işlemi yoktur; geçiş terminaldir.
func (s *CheckInService) checkIn(ctx context.Context, invitee *models.Invitee) (*models.Invitee, error) {
	if invitee.CheckedIn {
		return nil, ErrAlreadyCheckedIn
	}
	if invitee.RSVPStatus == models.RSVPStatusDeclined {
		return nil, ErrCannotCheckInDeclined
	}

	now := time.Now().UTC()
	if invitee.RSVPStatus == models.RSVPStatusPending {
		// Walk-in: önceden LCV verilmemiş misafirin girişi kabul sayılır.
		invitee.RSVPStatus = models.RSVPStatusAccepted
		invitee.RSVPSubmittedAt = &now
	}
	invitee.CheckedIn = true
	invitee.CheckedInAt = &now

	if err := s.repo.Update(ctx, invitee); err != nil {
		configslog.Log.Error("checkIn: kayıt güncellenemedi", zap.String("sn", invitee.SN), zap.Error(err))
		return nil, ErrInviteeUpdateFailed
	}

	configslog.SLog.Infof("Davetli giriş yaptı: %s (%s)", invitee.SN, invitee.Name)
	return invitee, nil
}

var _ ICheckInService = (*CheckInService)(nil)
