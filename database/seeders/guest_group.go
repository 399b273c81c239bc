package seeders

import (
	"context"

	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sampleGroup seed edilecek örnek grup ve üyeleri.
type sampleGroup struct {
	group   models.GuestGroup
	members []models.Guest
}

// SeedSampleGroups örnek davetli gruplarını oluşturur: her iki taraf için
// önceden belirlenmiş aile grupları ve kontenjanlı arkadaş grupları.
// Gruplar adlarına göre idempotenttir, mevcutsa atlanır.
func SeedSampleGroups(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := models.WithUserID(context.Background(), systemUserID)

	samples := []sampleGroup{
		{
			group: models.GuestGroup{
				GroupName: "Gelin Ailesi", IsPredetermined: true,
				GuestType: models.GuestTypeBride, Role: models.GuestRoleFamily,
			},
			members: []models.Guest{
				{Name: "Ayşe Yılmaz", MaxCount: 1, GuestType: models.GuestTypeBride, Role: models.GuestRoleFamily},
				{Name: "Mehmet Yılmaz", MaxCount: 1, GuestType: models.GuestTypeBride, Role: models.GuestRoleFamily},
			},
		},
		{
			group: models.GuestGroup{
				GroupName: "Damat Ailesi", IsPredetermined: true,
				GuestType: models.GuestTypeGroom, Role: models.GuestRoleFamily,
			},
			members: []models.Guest{
				{Name: "Fatma Demir", MaxCount: 1, GuestType: models.GuestTypeGroom, Role: models.GuestRoleFamily},
				{Name: "Ali Demir", MaxCount: 1, GuestType: models.GuestTypeGroom, Role: models.GuestRoleFamily},
			},
		},
		{
			group: models.GuestGroup{
				GroupName: "Gelinin Arkadaşları", GroupCountMax: 10,
				GuestType: models.GuestTypeBride, Role: models.GuestRoleFriends,
			},
		},
		{
			group: models.GuestGroup{
				GroupName: "Damadın Arkadaşları", GroupCountMax: 10,
				GuestType: models.GuestTypeGroom, Role: models.GuestRoleFriends,
			},
		},
	}

	var createdCount int

	configslog.SLog.Info("Örnek davetli grupları seed işlemi başlıyor...")

	for _, sample := range samples {
		var existing models.GuestGroup
		result := db.Where("group_name = ?", sample.group.GroupName).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Grup '%s' zaten mevcut, oluşturma atlanıyor.", sample.group.GroupName)
			continue
		}

		group := sample.group
		if err := db.WithContext(ctx).Create(&group).Error; err != nil {
			configslog.Log.Error("Örnek grup oluşturulamadı",
				zap.String("group_name", group.GroupName), zap.Error(err))
			return err
		}

		for _, member := range sample.members {
			member.GroupID = &group.ID
			if err := db.WithContext(ctx).Create(&member).Error; err != nil {
				configslog.Log.Error("Örnek davetli oluşturulamadı",
					zap.String("name", member.Name), zap.Error(err))
				return err
			}
		}

		configslog.SLog.Infof("Grup '%s' oluşturuldu (ID: %d, anahtar: %s, üye: %d).",
			group.GroupName, group.ID, group.RSVPKey, len(sample.members))
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet örnek grup seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm örnek gruplar zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
