package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fercullen.events/configs/configsdatabase"
	"fercullen.events/configs/configslog"
	"fercullen.events/database/migrations"
	"fercullen.events/models"
	"fercullen.events/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, migrations.MigrateUsersTable(db))
	require.NoError(t, migrations.MigrateInviteesTable(db))
	require.NoError(t, migrations.MigrateInvitationLogsTable(db))
	require.NoError(t, migrations.MigrateSerialCountersTable(db))

	configsdatabase.SetDB(db)
	return db
}

func seedInvitees(t *testing.T, db *gorm.DB, invitees []models.Invitee) {
	t.Helper()
	for i := range invitees {
		require.NoError(t, db.Create(&invitees[i]).Error)
	}
}

func TestFindBySNAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInviteeRepository()
	ctx := context.Background()

	seedInvitees(t, db, []models.Invitee{{SN: "FQ-001", Name: "Alice", RSVPStatus: models.RSVPStatusPending}})

	found, err := repo.FindBySN(ctx, "FQ-001")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	_, err = repo.FindBySN(ctx, "FQ-999")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "FQ-001"))
	assert.ErrorIs(t, repo.Delete(ctx, "FQ-001"), ErrNotFound)
}

func TestTimestampFieldsSurviveReload(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInviteeRepository()
	logRepo := NewInvitationLogRepository()
	ctx := context.Background()

	now := time.Now().UTC()
	invitee := models.Invitee{
		SN: "FQ-001", Name: "Alice", RSVPStatus: models.RSVPStatusAccepted,
		InvitationSent: true, InvitationSentAt: &now,
		RSVPSubmittedAt: &now,
		CheckedIn:       true, CheckedInAt: &now,
	}
	require.NoError(t, db.Create(&invitee).Error)

	// Zaman alanları tekrar okunduğunda time.Time olarak çözülebilmeli.
	found, err := repo.FindBySN(ctx, "FQ-001")
	require.NoError(t, err)
	require.NotNil(t, found.InvitationSentAt)
	require.NotNil(t, found.RSVPSubmittedAt)
	require.NotNil(t, found.CheckedInAt)
	assert.WithinDuration(t, now, *found.RSVPSubmittedAt, time.Second)
	assert.WithinDuration(t, now, *found.CheckedInAt, time.Second)

	require.NoError(t, logRepo.Append(ctx, &models.InvitationLog{
		InviteeSN: "FQ-001", Status: models.LogStatusSent, SentAt: now,
	}))
	logs, err := logRepo.FindBySN(ctx, "FQ-001")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.WithinDuration(t, now, logs[0].SentAt, time.Second)
}

func TestPartialUniqueEmailIndex(t *testing.T) {
	db := setupTestDB(t)

	// E-postasız kayıtlar sınırsız; dolu e-posta benzersiz olmalı.
	require.NoError(t, db.Create(&models.Invitee{SN: "FQ-001", Name: "A", RSVPStatus: models.RSVPStatusPending}).Error)
	require.NoError(t, db.Create(&models.Invitee{SN: "FQ-002", Name: "B", RSVPStatus: models.RSVPStatusPending}).Error)
	require.NoError(t, db.Create(&models.Invitee{SN: "FQ-003", Name: "C", Email: "c@example.com", RSVPStatus: models.RSVPStatusPending}).Error)

	err := db.Create(&models.Invitee{SN: "FQ-004", Name: "D", Email: "c@example.com", RSVPStatus: models.RSVPStatusPending}).Error
	assert.Error(t, err, "dolu e-posta tekrarı indeks tarafından engellenmeli")
}

func TestFindAllPaginatedFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInviteeRepository()
	ctx := context.Background()

	seedInvitees(t, db, []models.Invitee{
		{SN: "FQ-001", Name: "Alice Murphy", Email: "alice@example.com", RSVPStatus: models.RSVPStatusAccepted, InvitationSent: true},
		{SN: "FQ-002", Name: "Bob Kelly", Email: "bob@example.com", RSVPStatus: models.RSVPStatusDeclined},
		{SN: "FQ-003", Name: "Carol Byrne", RSVPStatus: models.RSVPStatusPending, CheckedIn: true},
	})

	cases := []struct {
		filter string
		want   int64
	}{
		{"all", 3},
		{"sent", 1},
		{"not_sent", 2},
		{"accepted", 1},
		{"declined", 1},
		{"pending_rsvp", 1},
		{"checked_in", 1},
		{"nonsense", 3}, // bilinmeyen filtre yok sayılır
	}
	for _, tc := range cases {
		params := queryparams.ListParams{Filter: tc.filter}
		params.Validate()
		_, total, err := repo.FindAllPaginated(ctx, params)
		require.NoError(t, err, "filter=%s", tc.filter)
		assert.Equal(t, tc.want, total, "filter=%s", tc.filter)
	}
}

func TestFindAllPaginatedEmptyResultIsNotNil(t *testing.T) {
	setupTestDB(t)
	repo := NewInviteeRepository()

	params := queryparams.ListParams{Search: "eşleşmeyen arama"}
	params.Validate()
	invitees, total, err := repo.FindAllPaginated(context.Background(), params)
	require.NoError(t, err)

	assert.Zero(t, total)
	require.NotNil(t, invitees, "boş sonuç JSON'da [] üretebilmek için nil olmamalı")
	assert.Len(t, invitees, 0)
}

func TestFindAllPaginatedSorting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInviteeRepository()
	ctx := context.Background()

	seedInvitees(t, db, []models.Invitee{
		{SN: "FQ-001", Name: "Charlie", RSVPStatus: models.RSVPStatusPending},
		{SN: "FQ-002", Name: "Alice", RSVPStatus: models.RSVPStatusPending},
		{SN: "FQ-003", Name: "Bob", RSVPStatus: models.RSVPStatusPending},
	})

	params := queryparams.ListParams{SortBy: "name", OrderBy: "asc"}
	params.Validate()
	invitees, _, err := repo.FindAllPaginated(ctx, params)
	require.NoError(t, err)
	require.Len(t, invitees, 3)
	assert.Equal(t, "Alice", invitees[0].Name)
	assert.Equal(t, "Bob", invitees[1].Name)
	assert.Equal(t, "Charlie", invitees[2].Name)

	// İzin verilmeyen sıralama alanı varsayılana düşer, hata üretmez.
	params = queryparams.ListParams{SortBy: "password_hash; DROP TABLE invitees"}
	params.Validate()
	_, total, err := repo.FindAllPaginated(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestMaxSerialSuffix(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInviteeRepository()
	ctx := context.Background()

	max, err := repo.MaxSerialSuffix(ctx)
	require.NoError(t, err)
	assert.Zero(t, max)

	seedInvitees(t, db, []models.Invitee{
		{SN: "FQ-007", Name: "A", RSVPStatus: models.RSVPStatusPending},
		{SN: "FQ-100", Name: "B", RSVPStatus: models.RSVPStatusPending},
		{SN: "LEGACY-1", Name: "C", RSVPStatus: models.RSVPStatusPending}, // kalıba uymayan SN yok sayılır
	})

	max, err = repo.MaxSerialSuffix(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), max)
}

func TestEmailExistsWithExclusion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInviteeRepository()
	ctx := context.Background()

	invitee := models.Invitee{SN: "FQ-001", Name: "Alice", Email: "alice@example.com", RSVPStatus: models.RSVPStatusPending}
	require.NoError(t, db.Create(&invitee).Error)

	exists, err := repo.EmailExists(ctx, "alice@example.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// Kendi kaydı hariç tutulunca çakışma yoktur.
	exists, err = repo.EmailExists(ctx, "alice@example.com", invitee.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.EmailExists(ctx, "", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}
