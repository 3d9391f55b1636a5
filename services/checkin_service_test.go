package services

import (
	"context"
	"testing"

	"fercullen.events/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInAutoAcceptsPendingGuest(t *testing.T) {
	setupTestDB(t)
	inviteeSvc := NewInviteeService()
	checkInSvc := NewCheckInService()
	ctx := context.Background()

	created, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Walk In"})
	require.NoError(t, err)
	require.Equal(t, models.RSVPStatusPending, created.RSVPStatus)

	checked, err := checkInSvc.CheckInBySN(ctx, created.SN)
	require.NoError(t, err)

	// Kapıdan giriş, önceden yanıt vermemiş misafir için kabul sayılır.
	assert.True(t, checked.CheckedIn)
	assert.NotNil(t, checked.CheckedInAt)
	assert.Equal(t, models.RSVPStatusAccepted, checked.RSVPStatus)
	assert.NotNil(t, checked.RSVPSubmittedAt)
}

func TestCheckInAcceptedGuestKeepsRSVPTime(t *testing.T) {
	setupTestDB(t)
	inviteeSvc := NewInviteeService()
	rsvpSvc := NewRSVPService()
	checkInSvc := NewCheckInService()
	ctx := context.Background()

	created, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Confirmed Guest"})
	require.NoError(t, err)

	accepted, err := rsvpSvc.SubmitRSVP(ctx, created.SN, RSVPSubmission{Status: "accepted"})
	require.NoError(t, err)
	rsvpTime := *accepted.RSVPSubmittedAt

	checked, err := checkInSvc.CheckInBySN(ctx, created.SN)
	require.NoError(t, err)

	assert.True(t, checked.CheckedIn)
	assert.Equal(t, models.RSVPStatusAccepted, checked.RSVPStatus)
	assert.True(t, checked.RSVPSubmittedAt.Equal(rsvpTime), "giriş, mevcut LCV zamanını değiştirmemeli")
}

func TestCheckInDeclinedGuestRejected(t *testing.T) {
	setupTestDB(t)
	inviteeSvc := NewInviteeService()
	rsvpSvc := NewRSVPService()
	checkInSvc := NewCheckInService()
	ctx := context.Background()

	created, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Declined Guest"})
	require.NoError(t, err)
	_, err = rsvpSvc.SubmitRSVP(ctx, created.SN, RSVPSubmission{Status: "declined"})
	require.NoError(t, err)

	_, err = checkInSvc.CheckInBySN(ctx, created.SN)
	assert.ErrorIs(t, err, ErrCannotCheckInDeclined)

	// Kayıt dokunulmadan kalmalı.
	after, err := inviteeSvc.GetInviteeBySN(ctx, created.SN)
	require.NoError(t, err)
	assert.False(t, after.CheckedIn)
	assert.Nil(t, after.CheckedInAt)
	assert.Equal(t, models.RSVPStatusDeclined, after.RSVPStatus)
}

func TestDoubleCheckInRejected(t *testing.T) {
	setupTestDB(t)
	inviteeSvc := NewInviteeService()
	checkInSvc := NewCheckInService()
	ctx := context.Background()

	created, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Eager Guest"})
	require.NoError(t, err)

	first, err := checkInSvc.CheckInBySN(ctx, created.SN)
	require.NoError(t, err)
	firstTime := *first.CheckedInAt

	_, err = checkInSvc.CheckInBySN(ctx, created.SN)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	after, err := inviteeSvc.GetInviteeBySN(ctx, created.SN)
	require.NoError(t, err)
	assert.True(t, after.CheckedInAt.Equal(firstTime), "ikinci deneme giriş zamanını değiştirmemeli")
}

func TestCheckInByID(t *testing.T) {
	setupTestDB(t)
	inviteeSvc := NewInviteeService()
	checkInSvc := NewCheckInService()
	ctx := context.Background()

	created, err := inviteeSvc.CreateInvitee(ctx, InviteeCreate{Name: "Panel Guest"})
	require.NoError(t, err)

	checked, err := checkInSvc.CheckInByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, checked.CheckedIn)

	_, err = checkInSvc.CheckInByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, ErrInviteeNotFound)
}
