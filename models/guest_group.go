package models

import (
	"crypto/rand"
	"math/big"

	"gorm.io/gorm"
)

// GuestType davetin hangi tarafa ait olduğunu belirtir (gelin / damat tarafı).
type GuestType string

const (
	GuestTypeBride GuestType = "bride"
	GuestTypeGroom GuestType = "groom"
)

// GuestRole davetli kategorisi.
type GuestRole string

const (
	GuestRoleFamily     GuestRole = "family"
	GuestRoleFriends    GuestRole = "friends"
	GuestRoleIndividual GuestRole = "individual"
)

// GuestGroup bir davetli grubunu temsil eder.
//
// İki tür grup vardır:
//   - IsPredetermined = true: davetli listesi ev sahibi tarafından önceden
//     belirlenmiştir; public LCV yalnızca mevcut üyelerin durumunu günceller.
//   - IsPredetermined = false ("bilinmeyen" grup): grup bir kontenjandır
//     (GroupCountMax kişiye kadar); isimleri LCV sırasında cevaplayan kişi girer.
type GuestGroup struct {
	BaseModel
	GroupName       string    `gorm:"type:varchar(150);not null" json:"group_name"`
	GroupCountMax   int       `gorm:"not null;default:0" json:"group_count_max"` // sadece bilinmeyen gruplar için anlamlı
	IsPredetermined bool      `gorm:"not null;default:false" json:"is_predetermined"`
	GuestType       GuestType `gorm:"type:varchar(10);not null;index" json:"guest_type"`
	Role            GuestRole `gorm:"type:varchar(20);not null;default:'family'" json:"role"`
	RSVPKey         string    `gorm:"type:varchar(11);uniqueIndex;not null" json:"rsvp_key"` // public davet linki anahtarı

	Guests []Guest `gorm:"foreignKey:GroupID" json:"guests,omitempty"`
}

const rsvpKeyLength = 11
const rsvpKeyCharset = "abcdefghjkmnpqrstuvwxyz23456789" // karıştırılabilir karakterler (l, o, 0, 1) hariç

// BeforeCreate audit alanlarını doldurur ve RSVPKey boşsa üretir.
func (g *GuestGroup) BeforeCreate(tx *gorm.DB) error {
	if err := g.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if g.RSVPKey == "" {
		key, err := generateRSVPKey()
		if err != nil {
			return err
		}
		g.RSVPKey = key
	}
	return nil
}

// generateRSVPKey tahmin edilmesi zor, URL'de kullanılabilir bir anahtar üretir.
// Benzersizlik veritabanındaki unique index ile garanti edilir; 31^11 olası
// anahtar olduğundan çakışma pratikte görülmez, görülürse insert hata verir.
func generateRSVPKey() (string, error) {
	buf := make([]byte, rsvpKeyLength)
	max := big.NewInt(int64(len(rsvpKeyCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = rsvpKeyCharset[n.Int64()]
	}
	return string(buf), nil
}
