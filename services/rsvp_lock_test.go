package services_test

import (
	"testing"

	"dugun.link/models"
	"dugun.link/services"
)

func TestEvaluateGroupLockPredetermined(t *testing.T) {
	group := &models.GuestGroup{IsPredetermined: true}

	t.Run("üyesiz grup açık", func(t *testing.T) {
		if services.EvaluateGroupLock(group, nil) {
			t.Error("üyesi olmayan grup kilitli olmamalı")
		}
	})

	t.Run("bir üye beklemedeyse açık", func(t *testing.T) {
		guests := []models.Guest{
			{Name: "A", IsComing: boolPtr(true)},
			{Name: "B", IsComing: nil},
			{Name: "C", IsComing: boolPtr(false)},
		}
		if services.EvaluateGroupLock(group, guests) {
			t.Error("beklemede üyesi olan grup kilitli olmamalı")
		}
	})

	t.Run("tüm üyeler cevapladıysa kilitli", func(t *testing.T) {
		guests := []models.Guest{
			{Name: "A", IsComing: boolPtr(true)},
			{Name: "B", IsComing: boolPtr(false)},
		}
		if !services.EvaluateGroupLock(group, guests) {
			t.Error("tüm üyeleri cevaplamış grup kilitli olmalı")
		}
	})
}

func TestEvaluateGroupLockUnknown(t *testing.T) {
	group := &models.GuestGroup{IsPredetermined: false, GroupCountMax: 5}

	t.Run("üyesiz grup açık", func(t *testing.T) {
		if services.EvaluateGroupLock(group, nil) {
			t.Error("henüz gönderim yapılmamış grup kilitli olmamalı")
		}
	})

	t.Run("tek bir kesin cevap grubu kilitler", func(t *testing.T) {
		guests := []models.Guest{
			{Name: "A", IsComing: boolPtr(true)},
		}
		if !services.EvaluateGroupLock(group, guests) {
			t.Error("gönderim yapılmış bilinmeyen grup kilitli olmalı")
		}
	})

	t.Run("ret kaydı da grubu kilitler", func(t *testing.T) {
		guests := []models.Guest{
			{Name: models.DeclineSentinelName, IsComing: boolPtr(false)},
		}
		if !services.EvaluateGroupLock(group, guests) {
			t.Error("ret göndermiş bilinmeyen grup kilitli olmalı")
		}
	})

	t.Run("tüm cevaplar beklemeye çekilirse açılır", func(t *testing.T) {
		guests := []models.Guest{
			{Name: "A", IsComing: nil},
			{Name: "B", IsComing: nil},
		}
		if services.EvaluateGroupLock(group, guests) {
			t.Error("tüm üyeleri beklemede olan grup açık olmalı")
		}
	})
}

func TestRemainingCapacity(t *testing.T) {
	unknown := &models.GuestGroup{IsPredetermined: false, GroupCountMax: 5}

	if got := services.RemainingCapacity(unknown, 0); got != 5 {
		t.Errorf("boş grupta kalan kontenjan 5 olmalı, %d döndü", got)
	}
	if got := services.RemainingCapacity(unknown, 3); got != 2 {
		t.Errorf("3 üyeli grupta kalan kontenjan 2 olmalı, %d döndü", got)
	}
	if got := services.RemainingCapacity(unknown, 7); got != 0 {
		t.Errorf("kontenjan aşımında kalan 0 olmalı, %d döndü", got)
	}

	predetermined := &models.GuestGroup{IsPredetermined: true, GroupCountMax: 5}
	if got := services.RemainingCapacity(predetermined, 1); got != 0 {
		t.Errorf("önceden belirlenmiş grupta kontenjan her zaman 0 olmalı, %d döndü", got)
	}
}
