package models

import "time"

// Davetiye log kayıtlarının olası durumları.
const (
	LogStatusSent         = "sent"
	LogStatusFailed       = "failed"
	LogStatusRSVPAccepted = "rsvp_accepted"
	LogStatusRSVPDeclined = "rsvp_declined"
)

// InvitationLog bir davetiye gönderim denemesinin veya LCV yanıtının
// değiştirilemez (append-only) kaydıdır. Hiçbir zaman güncellenmez
// veya silinmez.
type InvitationLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InviteeSN    string    `gorm:"type:varchar(20);index;not null" json:"invitee_sn"`
	Email        string    `gorm:"type:varchar(150)" json:"email"`
	Status       string    `gorm:"type:varchar(20);not null;index" json:"status"`
	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
	SentAt       time.Time `gorm:"not null;index" json:"sent_at"`
}
