package models

import "time"

// RSVPStatus olası LCV durumlarını tanımlar.
type RSVPStatus string

const (
	RSVPStatusPending  RSVPStatus = "pending"  // Henüz cevap verilmedi
	RSVPStatusAccepted RSVPStatus = "accepted" // Katılacak
	RSVPStatusDeclined RSVPStatus = "declined" // Katılmayacak
)

// Invitee etkinliğe davet edilen bir misafiri temsil eder.
// SN (seri numarası) davetiye linklerinde ve QR kodlarında kullanılan
// benzersiz, insan tarafından okunabilir tanımlayıcıdır (FQ-001 gibi).
type Invitee struct {
	BaseModel
	SN      string `gorm:"type:varchar(20);uniqueIndex;not null" json:"sn"`
	Name    string `gorm:"type:varchar(150);not null" json:"name"`
	Title   string `gorm:"type:varchar(150)" json:"title"`
	Company string `gorm:"type:varchar(150)" json:"company"`
	// E-posta opsiyoneldir; doluysa küçük harfe çevrilir ve benzersiz olmalıdır.
	// Boş olmayan e-postalar için partial unique index migration'da oluşturulur.
	Email string `gorm:"type:varchar(150);index" json:"email"`
	Phone string `gorm:"type:varchar(30)" json:"phone"`
	Notes string `gorm:"type:text" json:"notes"`

	// Oluşturma/import sırasında otomatik davetiye gönderilsin mi?
	// E-posta boşsa her zaman false.
	EmailInviteFlag bool `gorm:"default:false" json:"email_invite_flag"`

	InvitationSent   bool       `gorm:"default:false;index" json:"invitation_sent"`
	InvitationSentAt *time.Time `json:"invitation_sent_at,omitempty"`

	RSVPStatus      RSVPStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"rsvp_status"`
	RSVPPreferences string     `gorm:"type:text" json:"rsvp_preferences"`
	RSVPNotes       string     `gorm:"type:text" json:"rsvp_notes"`
	RSVPSubmittedAt *time.Time `json:"rsvp_submitted_at,omitempty"`

	CheckedIn   bool       `gorm:"default:false;index" json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

// InviteeUpdate davetli iletişim alanları için kısmi güncelleme yapısı.
// nil olan alanlar güncellenmez. SN ve ID hiçbir zaman değiştirilemez;
// durum geçişleri (LCV, check-in, davetiye gönderimi) kendi servisleri
// üzerinden yapılır.
type InviteeUpdate struct {
	Name            *string `json:"name"`
	Title           *string `json:"title"`
	Company         *string `json:"company"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Notes           *string `json:"notes"`
	EmailInviteFlag *bool   `json:"email_invite_flag"`
}
