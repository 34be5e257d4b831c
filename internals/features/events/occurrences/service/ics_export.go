// file: internals/features/events/occurrences/service/ics_export.go
package service

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	occModel "komunitas_backend/internals/features/events/occurrences/model"
)

// BuildICS menyusun kalender iCalendar dari daftar occurrence aktif sebuah
// event, untuk diimpor peserta ke aplikasi kalender mereka.
func BuildICS(eventTitle, locationLabel string, occurrences []occModel.EventOccurrenceModel) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//komunitas_backend//event occurrences//ID")

	now := time.Now()
	for _, o := range occurrences {
		if !o.IsActive() {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("%s@komunitas", o.OccurrenceID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(o.OccurrenceStartAt)
		ev.SetEndAt(o.OccurrenceEndAt)
		ev.SetSummary(eventTitle)
		if locationLabel != "" {
			ev.SetLocation(locationLabel)
		}
	}

	return cal.Serialize()
}
