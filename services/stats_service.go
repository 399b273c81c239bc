package services

import (
	"context"

	"dugun.link/models"
	"dugun.link/repositories"
)

// AttendanceStats tek bir kesit (toplam ya da taraf) için sayılar.
type AttendanceStats struct {
	Expected  int `json:"expected"`  // beklenen toplam kişi (kontenjanlardan)
	Responded int `json:"responded"` // kesin cevap vermiş davetli sayısı
	Going     int `json:"going"`
	NotGoing  int `json:"not_going"`
	Pending   int `json:"pending"` // Expected - Responded
}

// StatsSummary yönetici panosunun gösterdiği özet.
type StatsSummary struct {
	Total AttendanceStats `json:"total"`
	Bride AttendanceStats `json:"bride"`
	Groom AttendanceStats `json:"groom"`
}

// IStatsService pano istatistikleri için arayüz.
type IStatsService interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}

// StatsService IStatsService arayüzünü uygular.
type StatsService struct {
	groupRepo repositories.IGroupRepository
	guestRepo repositories.IGuestRepository
}

// NewStatsService yeni bir StatsService örneği oluşturur.
func NewStatsService() IStatsService {
	return &StatsService{
		groupRepo: repositories.NewGroupRepository(),
		guestRepo: repositories.NewGuestRepository(),
	}
}

// Summary tüm grup ve davetli kayıtları üzerinden özeti hesaplar.
// Her çağrıda veriler taze okunur ve sonuç sıfırdan hesaplanır; ara durum
// tutulmaz, bu yüzden sonuç her zaman deterministiktir.
func (s *StatsService) Summary(ctx context.Context) (*StatsSummary, error) {
	groups, err := s.groupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := ComputeStats(groups, guests)
	return &summary, nil
}

// ComputeStats yüklenmiş kayıtlar üzerinde saf bir indirgemedir.
//
// Beklenen kişi sayısı:
//   - kontenjanlı gruplar için GroupCountMax,
//   - kontenjansız gruplar için üyelerin MaxCount toplamı,
//   - artı bağımsız bireysel davetlilerin MaxCount'u.
//
// "Cevapladı" ve "geliyor" sayımları katıdır: LCV gönderilmiş, e-posta
// girilmiş ve kesin cevap verilmiş olmalı. "Gelmiyor" için e-posta aranmaz,
// LCV'nin gönderilmiş olması yeterlidir.
func ComputeStats(groups []models.GuestGroup, guests []models.Guest) StatsSummary {
	byGroup := make(map[uint][]models.Guest)
	for _, g := range guests {
		if g.GroupID != nil {
			byGroup[*g.GroupID] = append(byGroup[*g.GroupID], g)
		}
	}
	groupType := make(map[uint]models.GuestType, len(groups))
	for _, grp := range groups {
		groupType[grp.ID] = grp.GuestType
	}

	var summary StatsSummary

	addExpected := func(t models.GuestType, n int) {
		summary.Total.Expected += n
		if t == models.GuestTypeBride {
			summary.Bride.Expected += n
		} else {
			summary.Groom.Expected += n
		}
	}

	for _, grp := range groups {
		if grp.GroupCountMax > 0 {
			addExpected(grp.GuestType, grp.GroupCountMax)
			continue
		}
		memberTotal := 0
		for _, g := range byGroup[grp.ID] {
			mc := g.MaxCount
			if mc < 1 {
				mc = 1
			}
			memberTotal += mc
		}
		addExpected(grp.GuestType, memberTotal)
	}

	for _, g := range guests {
		if g.IsStandalone() {
			mc := g.MaxCount
			if mc < 1 {
				mc = 1
			}
			addExpected(g.GuestType, mc)
		}

		// Davetlinin tarafı: gruba bağlıysa grubun tarafı esastır.
		side := g.GuestType
		if g.GroupID != nil {
			if t, ok := groupType[*g.GroupID]; ok {
				side = t
			}
		}

		responded := g.RSVPSubmitted && g.Email != "" && g.IsComing != nil
		if responded {
			summary.Total.Responded++
			if side == models.GuestTypeBride {
				summary.Bride.Responded++
			} else {
				summary.Groom.Responded++
			}
		}
		// "Geliyor" sayımı "cevapladı" kadar katıdır (e-posta da gerekir);
		// "gelmiyor" için LCV'nin gönderilmiş olması yeterlidir.
		if g.IsComing != nil && *g.IsComing && responded {
			summary.Total.Going++
			if side == models.GuestTypeBride {
				summary.Bride.Going++
			} else {
				summary.Groom.Going++
			}
		}
		if g.IsComing != nil && !*g.IsComing && g.RSVPSubmitted {
			summary.Total.NotGoing++
			if side == models.GuestTypeBride {
				summary.Bride.NotGoing++
			} else {
				summary.Groom.NotGoing++
			}
		}
	}

	summary.Total.Pending = summary.Total.Expected - summary.Total.Responded
	summary.Bride.Pending = summary.Bride.Expected - summary.Bride.Responded
	summary.Groom.Pending = summary.Groom.Expected - summary.Groom.Responded
	return summary
}

var _ IStatsService = (*StatsService)(nil)
