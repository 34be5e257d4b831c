// file: internals/features/events/attendance/dto/attendance_dto.go
package dto

import (
	occModel "komunitas_backend/internals/features/events/occurrences/model"
)

// SetMarkRequest menulis satu mark absensi; mark "pending" mengembalikan
// sel ke default (menghapus catatan).
type SetMarkRequest struct {
	OccurrenceKey occModel.Key `json:"occurrence_key" validate:"required"`
	Mark          string       `json:"mark"           validate:"required,oneof=present absent pending"`
}
