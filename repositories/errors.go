package repositories

import "errors"

// ErrNotFound kayıt bulunamadığında tüm repository'lerin döndürdüğü ortak hata.
// Servis katmanı gorm.ErrRecordNotFound yerine bunu kontrol eder.
var ErrNotFound = errors.New("kayıt bulunamadı")
