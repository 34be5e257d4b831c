// file: internals/features/events/registrations/scheduler/purge_scheduler.go
package scheduler

import (
	"log"
	"strconv"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	regModel "komunitas_backend/internals/features/events/registrations/model"
	"komunitas_backend/internals/configs"
)

const defaultPurgeTTLDays = 180

// StartPurgeScheduler menjadwalkan pembersihan registrasi cancelled yang
// sudah melewati masa retensi (REGISTRATION_PURGE_TTL_DAYS, default 180).
// Hanya baris cancelled yang pernah dihapus fisik; selain itu data tetap.
func StartPurgeScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := defaultPurgeTTLDays
	if raw := configs.GetEnv("REGISTRATION_PURGE_TTL_DAYS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			ttlDays = v
		}
	}

	c := cron.New()
	// tiap hari jam 02:30 waktu server
	_, err := c.AddFunc("30 2 * * *", func() {
		res := db.Unscoped().
			Where("registration_status = ?", regModel.StatusCancelled).
			Where("registration_updated_at < now() - make_interval(days => ?)", ttlDays).
			Delete(&regModel.EventRegistrationModel{})
		if res.Error != nil {
			log.Printf("[PURGE] gagal membersihkan registrasi cancelled: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[PURGE] %d registrasi cancelled (> %d hari) dihapus", res.RowsAffected, ttlDays)
		}
	})
	if err != nil {
		log.Printf("[PURGE] gagal mendaftarkan jadwal: %v", err)
		return c
	}

	c.Start()
	return c
}
