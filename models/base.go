package models

import "time"

// BaseModel tüm tablolarda ortak olan alanları içerir.
// Davetli kayıtları kalıcı olarak silindiği için soft delete kullanılmaz;
// seri numarası rezervasyonu serial_counters tablosu ile korunur.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
