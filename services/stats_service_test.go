package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmpty(t *testing.T) {
	setupTestDB(t)
	statsSvc := NewStatsService()

	stats, err := statsSvc.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalInvitees)
	assert.Zero(t, stats.SentInvitations)
	assert.Zero(t, stats.TotalRSVP)
	assert.Zero(t, stats.CheckedInGuests)
	assert.Zero(t, stats.TotalLogs)
}

func TestComputeStatsReflectsCurrentState(t *testing.T) {
	setupTestDB(t)
	inviteeSvc := NewInviteeService()
	rsvpSvc := NewRSVPService()
	checkInSvc := NewCheckInService()
	sendSvc := NewInvitationSendService(&fakeMailer{})
	statsSvc := NewStatsService()
	ctx := context.Background()

	a, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	b, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	_, err = inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Carol"})
	require.NoError(t, err)
	d, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Dave"})
	require.NoError(t, err)

	_, err = sendSvc.SendInvitationBySN(ctx, a.SN, "https://events.example.com")
	require.NoError(t, err)
	_, err = rsvpSvc.SubmitRSVP(ctx, a.SN, RSVPSubmission{Status: "accepted"})
	require.NoError(t, err)
	_, err = rsvpSvc.SubmitRSVP(ctx, b.SN, RSVPSubmission{Status: "declined"})
	require.NoError(t, err)
	_, err = checkInSvc.CheckInBySN(ctx, a.SN)
	require.NoError(t, err)
	// Dave kapıdan geliyor: giriş, kabul sayılır.
	_, err = checkInSvc.CheckInBySN(ctx, d.SN)
	require.NoError(t, err)

	stats, err := statsSvc.ComputeStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalInvitees)
	assert.Equal(t, int64(1), stats.SentInvitations)
	assert.Equal(t, int64(2), stats.AcceptedRSVPs)
	assert.Equal(t, int64(1), stats.DeclinedRSVPs)
	assert.Equal(t, int64(2), stats.CheckedInGuests)
	// pending olmayan herkes yanıt vermiş sayılır.
	assert.Equal(t, stats.AcceptedRSVPs+stats.DeclinedRSVPs, stats.TotalRSVP)
	// 1 gönderim + 2 LCV log kaydı
	assert.Equal(t, int64(3), stats.TotalLogs)
}
