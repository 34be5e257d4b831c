// file: internals/features/membership/locations/dto/location_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "komunitas_backend/internals/features/membership/locations/model"
)

type CreateLocationRequest struct {
	Name    string  `json:"location_name"    validate:"required,min=1,max=160"`
	Address *string `json:"location_address"`
	City    *string `json:"location_city"    validate:"omitempty,max=80"`
}

func (r *CreateLocationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trim := func(pp **string) {
		if *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		if v == "" {
			*pp = nil
		} else {
			*pp = &v
		}
	}
	trim(&r.Address)
	trim(&r.City)
}

func (r CreateLocationRequest) ToModel() *m.LocationModel {
	return &m.LocationModel{
		LocationName:    r.Name,
		LocationAddress: r.Address,
		LocationCity:    r.City,
	}
}

type UpdateLocationRequest struct {
	Name    *string `json:"location_name"    validate:"omitempty,min=1,max=160"`
	Address *string `json:"location_address"`
	City    *string `json:"location_city"    validate:"omitempty,max=80"`
}

func (r UpdateLocationRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["location_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Address != nil {
		updates["location_address"] = strings.TrimSpace(*r.Address)
	}
	if r.City != nil {
		updates["location_city"] = strings.TrimSpace(*r.City)
	}
	return updates
}

type LocationResponse struct {
	LocationID uuid.UUID `json:"location_id"`
	Name       string    `json:"location_name"`
	Address    *string   `json:"location_address,omitempty"`
	City       *string   `json:"location_city,omitempty"`
	CreatedAt  time.Time `json:"location_created_at"`
	UpdatedAt  time.Time `json:"location_updated_at"`
}

func FromModel(mm *m.LocationModel) LocationResponse {
	return LocationResponse{
		LocationID: mm.LocationID,
		Name:       mm.LocationName,
		Address:    mm.LocationAddress,
		City:       mm.LocationCity,
		CreatedAt:  mm.LocationCreatedAt,
		UpdatedAt:  mm.LocationUpdatedAt,
	}
}

func FromModels(rows []m.LocationModel) []LocationResponse {
	out := make([]LocationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
