// file: internals/features/notifications/service/dispatcher.go
package service

import (
	"log"

	"gorm.io/gorm"

	notifModel "komunitas_backend/internals/features/notifications/model"
)

// Dispatcher menerima notifikasi logis dari core. Implementasi default
// menyimpan baris notifications; worker pengirim email/SMS berjalan di luar
// core ini.
type Dispatcher interface {
	Dispatch(tx *gorm.DB, n *notifModel.NotificationModel) error
}

type dbDispatcher struct{}

func NewDispatcher() Dispatcher { return &dbDispatcher{} }

func (d *dbDispatcher) Dispatch(tx *gorm.DB, n *notifModel.NotificationModel) error {
	if err := tx.Create(n).Error; err != nil {
		return err
	}
	log.Printf("[NOTIFIER] queued kind=%s event=%v", n.NotificationKind, n.NotificationEventID)
	return nil
}
