package services

import (
	"context"

	"fercullen.events/models"
	"fercullen.events/repositories"
)

// Stats dashboard'da gösterilen türetilmiş sayıları taşır.
type Stats struct {
	TotalInvitees   int64 `json:"total_invitees"`
	SentInvitations int64 `json:"sent_invitations"`
	TotalRSVP       int64 `json:"total_rsvp"`
	AcceptedRSVPs   int64 `json:"accepted_rsvps"`
	DeclinedRSVPs   int64 `json:"declined_rsvps"`
	CheckedInGuests int64 `json:"checked_in_guests"`
	TotalLogs       int64 `json:"total_logs"`
}

// IStatsService istatistik hesaplama için arayüz.
type IStatsService interface {
	ComputeStats(ctx context.Context) (*Stats, error)
}

// StatsService IStatsService arayüzünü uygular.
// Sayılar her çağrıda güncel tablo durumundan yeniden hesaplanır;
// cache tutulmaz. Tablo bu ölçekte küçük olduğu için tam sayım kabul
// edilebilir maliyettedir.
type StatsService struct {
	repo    repositories.IInviteeRepository
	logRepo repositories.IInvitationLogRepository
}

// NewStatsService yeni bir StatsService örneği oluşturur.
func NewStatsService() IStatsService {
	return &StatsService{
		repo:    repositories.NewInviteeRepository(),
		logRepo: repositories.NewInvitationLogRepository(),
	}
}

// ComputeStats mevcut davetli kümesinden türetilmiş sayıları hesaplar.
// TotalRSVP, durumu 'pending' olmayan davetli sayısıdır.
func (s *StatsService) ComputeStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.TotalInvitees, err = s.repo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.SentInvitations, err = s.repo.CountInvitationSent(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRSVP, err = s.repo.CountRSVPSubmitted(ctx); err != nil {
		return nil, err
	}
	if stats.AcceptedRSVPs, err = s.repo.CountByRSVPStatus(ctx, models.RSVPStatusAccepted); err != nil {
		return nil, err
	}
	if stats.DeclinedRSVPs, err = s.repo.CountByRSVPStatus(ctx, models.RSVPStatusDeclined); err != nil {
		return nil, err
	}
	if stats.CheckedInGuests, err = s.repo.CountCheckedIn(ctx); err != nil {
		return nil, err
	}
	if stats.TotalLogs, err = s.logRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

var _ IStatsService = (*StatsService)(nil)
