// file: internals/features/events/notifier/service/capacity_notifier.go
package service

import (
	"encoding/json"

	"gorm.io/gorm"

	eventModel "komunitas_backend/internals/features/events/events/model"
	notifModel "komunitas_backend/internals/features/notifications/model"
	notifService "komunitas_backend/internals/features/notifications/service"
)

// KindCapacityThreshold adalah kind notifikasi saat sisa slot menyentuh ambang.
const KindCapacityThreshold = "event_capacity_threshold"

// ShouldNotify memutuskan apakah ambang kapasitas baru saja terlewati.
// Latch one-shot: sekali terpicu tidak terpicu lagi sampai konfigurasi
// kapasitas diubah (lihat ResetLatch).
func ShouldNotify(capacityTotal, threshold, activeCount int, alreadyNotified bool) bool {
	if capacityTotal == 0 || threshold == 0 {
		return false
	}
	if alreadyNotified {
		return false
	}
	remaining := capacityTotal - activeCount
	return remaining <= threshold
}

type ThresholdPayload struct {
	EventID   string `json:"event_id"`
	Remaining int    `json:"remaining"`
	Threshold int    `json:"threshold"`
}

type CapacityNotifier struct {
	dispatcher notifService.Dispatcher
}

func NewCapacityNotifier(dispatcher notifService.Dispatcher) *CapacityNotifier {
	return &CapacityNotifier{dispatcher: dispatcher}
}

// Evaluate dipanggil setelah setiap mutasi yang memengaruhi admisi (create,
// cancel, edit kapasitas), di dalam transaksi yang sama supaya penulisan
// latch atomik dengan admisinya.
func (n *CapacityNotifier) Evaluate(tx *gorm.DB, ev *eventModel.EventModel, activeCount int) error {
	if !ShouldNotify(ev.EventCapacityTotal, ev.EventCapacityNotifyThreshold, activeCount, ev.EventCapacityNotified) {
		return nil
	}

	payload, err := json.Marshal(ThresholdPayload{
		EventID:   ev.EventID.String(),
		Remaining: ev.EventCapacityTotal - activeCount,
		Threshold: ev.EventCapacityNotifyThreshold,
	})
	if err != nil {
		return err
	}

	eventID := ev.EventID
	if err := n.dispatcher.Dispatch(tx, &notifModel.NotificationModel{
		NotificationKind:    KindCapacityThreshold,
		NotificationEventID: &eventID,
		NotificationPayload: payload,
	}); err != nil {
		return err
	}

	if err := tx.Model(&eventModel.EventModel{}).
		Where("event_id = ?", ev.EventID).
		Update("event_capacity_notified", true).Error; err != nil {
		return err
	}
	ev.EventCapacityNotified = true
	return nil
}

// ResetLatch mengosongkan latch; dipanggil saat capacity_total atau
// notify_threshold diubah lewat edit event.
func (n *CapacityNotifier) ResetLatch(tx *gorm.DB, ev *eventModel.EventModel) error {
	if err := tx.Model(&eventModel.EventModel{}).
		Where("event_id = ?", ev.EventID).
		Update("event_capacity_notified", false).Error; err != nil {
		return err
	}
	ev.EventCapacityNotified = false
	return nil
}
