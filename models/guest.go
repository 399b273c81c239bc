package models

import "time"

// Guest tek bir davetliyi temsil eder.
//
// GroupID nil ise davetli "bağımsız bireysel davetli"dir: hiçbir gruba bağlı
// değildir ve kendisi dahil MaxCount kişiye kadar refakatçi getirebilir.
// IsComing üç durumludur: nil = beklemede, true = geliyor, false = gelmiyor.
type Guest struct {
	BaseModel
	GroupID *uint  `gorm:"index" json:"group_id"`
	Name    string `gorm:"type:varchar(150);not null" json:"name"`
	Email   string `gorm:"type:varchar(150)" json:"email"`

	IsComing      *bool      `json:"is_coming"`
	RSVPSubmitted bool       `gorm:"not null;default:false" json:"rsvp_submitted"`
	RSVPDate      *time.Time `json:"rsvp_date"`

	MaxCount    int       `gorm:"not null;default:1" json:"max_count"` // bireysel davetli için kendisi dahil kişi hakkı
	GuestType   GuestType `gorm:"type:varchar(10);not null;index" json:"guest_type"`
	Role        GuestRole `gorm:"type:varchar(20);not null;default:'family'" json:"role"`
	CompanionOf *uint     `gorm:"index" json:"companion_of"` // refakatçiyse asıl davetlinin ID'si

	// Davetiye e-postası takibi (en az bir kez, en iyi çaba teslimat).
	InvitationEmailSent    bool       `gorm:"not null;default:false" json:"invitation_email_sent"`
	InvitationEmailSentAt  *time.Time `json:"invitation_email_sent_at"`
	InvitationEmailError   string     `gorm:"type:text" json:"invitation_email_error,omitempty"`
	InvitationEmailErrorAt *time.Time `json:"invitation_email_error_at,omitempty"`
	ManualInvitationSent   bool       `gorm:"not null;default:false" json:"manual_invitation_sent"`
	BulkInvitationSent     bool       `gorm:"not null;default:false" json:"bulk_invitation_sent"`

	Group *GuestGroup `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// DeclineSentinelName bilinmeyen grubun "gelemiyoruz" cevabında oluşturulan
// tek kayıt için kullanılan işaretçi isim. Grup adına tek bir ret kaydıdır,
// gerçek bir davetliyi temsil etmez.
const DeclineSentinelName = "(katılamıyor)"

// IsLocked davetlinin kendi kilidini döndürür: kesin cevap verildiyse public
// LCV artık bu kaydı değiştiremez. Yönetici kaydı beklemeye çekerek açar.
func (g *Guest) IsLocked() bool {
	return g.IsComing != nil
}

// IsStandalone davetlinin gruba bağlı olmayan bireysel davetli olup olmadığı.
func (g *Guest) IsStandalone() bool {
	return g.GroupID == nil && g.CompanionOf == nil
}
