package services

import (
	"context"
	"testing"

	"fercullen.events/models"
	"fercullen.events/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInviteeAssignsSequentialSerials(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	first, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	second, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "Jane Smith"})
	require.NoError(t, err)

	assert.Equal(t, "FQ-001", first.SN)
	assert.Equal(t, "FQ-002", second.SN)

	// Yeni kayıt varsayılanları
	assert.Equal(t, models.RSVPStatusPending, first.RSVPStatus)
	assert.False(t, first.InvitationSent)
	assert.False(t, first.CheckedIn)
	assert.Nil(t, first.RSVPSubmittedAt)
}

func TestCreateInviteeSeedsCounterFromExistingRecords(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInviteeService()

	// Sayaç tablosu boşken elle eklenmiş eski kayıtlar bulunabilir.
	require.NoError(t, db.Create(&models.Invitee{SN: "FQ-041", Name: "Legacy Guest", RSVPStatus: models.RSVPStatusPending}).Error)

	created, err := svc.CreateInvitee(context.Background(), InviteeCreate{Name: "New Guest"})
	require.NoError(t, err)
	assert.Equal(t, "FQ-042", created.SN)
}

func TestCreateInviteeDuplicateEmailRejected(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	_, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateInvitee(ctx, InviteeCreate{Name: "Impostor", Email: "JOHN@example.com"})
	assert.ErrorIs(t, err, ErrInviteeEmailExists)

	// Başarısız denemeden geriye kayıt da seri numarası tüketimi de kalmamalı.
	list, err := svc.ListInvitees(ctx, queryparams.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Meta.TotalItems)

	next, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "Third"})
	require.NoError(t, err)
	assert.Equal(t, "FQ-002", next.SN)
}

func TestCreateInviteeValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	_, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "   "})
	assert.ErrorIs(t, err, ErrInviteeNameRequired)

	_, err = svc.CreateInvitee(ctx, InviteeCreate{Name: "Bad Email", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInviteeInvalidEmail)
}

func TestCreateInviteeWithoutEmailClearsInviteFlag(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()

	created, err := svc.CreateInvitee(context.Background(), InviteeCreate{Name: "No Mail", EmailInviteFlag: true})
	require.NoError(t, err)
	assert.False(t, created.EmailInviteFlag)
	assert.Empty(t, created.Email)
}

func TestCreateInviteeFailsWhenCounterUnavailable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	// Sayaç tablosu yoksa tahsis yapılmaz; zaman damgası gibi alternatif
	// bir numara üretilmez ve kayıt eklenmez.
	require.NoError(t, db.Migrator().DropTable(&models.SerialCounter{}))

	_, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "Unlucky"})
	assert.ErrorIs(t, err, ErrInviteeCreationFailed)

	var count int64
	require.NoError(t, db.Model(&models.Invitee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSerialNotReusedAfterDelete(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	_, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "First"})
	require.NoError(t, err)
	second, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "Second"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvitee(ctx, second.SN))

	third, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "Third"})
	require.NoError(t, err)
	assert.Equal(t, "FQ-003", third.SN, "silinen FQ-002 yeniden kullanılmamalı")
}

func TestUpdateInviteePartialMerge(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	created, err := svc.CreateInvitee(ctx, InviteeCreate{
		Name: "John Doe", Title: "CEO", Company: "Example Corp", Email: "john@example.com",
	})
	require.NoError(t, err)

	newTitle := "CTO"
	updated, err := svc.UpdateInvitee(ctx, created.SN, models.InviteeUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "CTO", updated.Title)
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, "Example Corp", updated.Company)
	assert.Equal(t, "john@example.com", updated.Email)
	assert.Equal(t, created.SN, updated.SN)
}

func TestUpdateInviteeDuplicateEmailRejected(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	_, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)
	jane, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	dup := "john@example.com"
	_, err = svc.UpdateInvitee(ctx, jane.SN, models.InviteeUpdate{Email: &dup})
	assert.ErrorIs(t, err, ErrInviteeEmailExists)

	// Kendi e-postasını yeniden vermek serbest.
	same := "jane@example.com"
	_, err = svc.UpdateInvitee(ctx, jane.SN, models.InviteeUpdate{Email: &same})
	assert.NoError(t, err)
}

func TestUpdateInviteeClearingEmailDisablesFlag(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	created, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "John", Email: "john@example.com", EmailInviteFlag: true})
	require.NoError(t, err)
	require.True(t, created.EmailInviteFlag)

	empty := ""
	updated, err := svc.UpdateInvitee(ctx, created.SN, models.InviteeUpdate{Email: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Email)
	assert.False(t, updated.EmailInviteFlag)
}

func TestListInviteesFilterAndSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	seed := []models.Invitee{
		{SN: "FQ-001", Name: "Alice Murphy", Company: "Powerscourt", RSVPStatus: models.RSVPStatusAccepted, InvitationSent: true},
		{SN: "FQ-002", Name: "Bob Kelly", Company: "Distillery Ltd", RSVPStatus: models.RSVPStatusDeclined},
		{SN: "FQ-003", Name: "Carol Byrne", Company: "Powerscourt", RSVPStatus: models.RSVPStatusPending, CheckedIn: true},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	accepted, err := svc.ListInvitees(ctx, queryparams.ListParams{Filter: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), accepted.Meta.TotalItems)

	notSent, err := svc.ListInvitees(ctx, queryparams.ListParams{Filter: "not_sent"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), notSent.Meta.TotalItems)

	checkedIn, err := svc.ListInvitees(ctx, queryparams.ListParams{Filter: "checked_in"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), checkedIn.Meta.TotalItems)

	search, err := svc.ListInvitees(ctx, queryparams.ListParams{Search: "powerscourt"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), search.Meta.TotalItems)

	bySN, err := svc.ListInvitees(ctx, queryparams.ListParams{Search: "fq-002"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), bySN.Meta.TotalItems)
}

func TestListInviteesPagination(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.CreateInvitee(ctx, InviteeCreate{Name: "Guest"})
		require.NoError(t, err)
	}

	page2, err := svc.ListInvitees(ctx, queryparams.ListParams{Page: 2, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page2.Meta.TotalItems)
	assert.Equal(t, 3, page2.Meta.TotalPages)
	assert.True(t, page2.Meta.HasNext)
	assert.True(t, page2.Meta.HasPrev)

	invitees, ok := page2.Data.([]models.Invitee)
	require.True(t, ok)
	assert.Len(t, invitees, 10)
}

func TestGetAndDeleteInviteeNotFound(t *testing.T) {
	setupTestDB(t)
	svc := NewInviteeService()
	ctx := context.Background()

	_, err := svc.GetInviteeBySN(ctx, "FQ-404")
	assert.ErrorIs(t, err, ErrInviteeNotFound)

	err = svc.DeleteInvitee(ctx, "FQ-404")
	assert.ErrorIs(t, err, ErrInviteeNotFound)
}
