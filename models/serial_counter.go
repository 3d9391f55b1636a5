package models

// SerialCounter seri numarası üretimi için kalıcı sayaç satırıdır.
// Davetli silinse bile sayaç geri sarılmaz; böylece bir seri numarası
// asla yeniden kullanılamaz.
type SerialCounter struct {
	Name  string `gorm:"type:varchar(30);primaryKey"`
	Value uint64 `gorm:"not null;default:0"`
}

// SerialCounterInvitee davetli seri numaraları için sayaç adı.
const SerialCounterInvitee = "invitee_sn"
