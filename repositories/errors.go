package repositories

import "errors"

// ErrNotFound aranan kaydın bulunamadığını belirtir.
// Servis katmanı bu hatayı kendi tipli hatalarına çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")
