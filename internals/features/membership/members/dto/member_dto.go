// file: internals/features/membership/members/dto/member_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "komunitas_backend/internals/features/membership/members/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateMemberRequest struct {
	Name  string  `json:"member_name"  validate:"required,min=1,max=120"`
	Email string  `json:"member_email" validate:"required,email,max=160"`
	Phone *string `json:"member_phone" validate:"omitempty,max=30"`

	IsGuardian bool       `json:"member_is_guardian"`
	GuardianID *uuid.UUID `json:"member_guardian_id"`
}

func (r *CreateMemberRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		if v == "" {
			r.Phone = nil
		} else {
			r.Phone = &v
		}
	}
}

func (r CreateMemberRequest) ToModel() *m.MemberModel {
	return &m.MemberModel{
		MemberName:       r.Name,
		MemberEmail:      r.Email,
		MemberPhone:      r.Phone,
		MemberIsGuardian: r.IsGuardian,
		MemberGuardianID: r.GuardianID,
	}
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateMemberRequest struct {
	Name  *string `json:"member_name"  validate:"omitempty,min=1,max=120"`
	Email *string `json:"member_email" validate:"omitempty,email,max=160"`
	Phone *string `json:"member_phone" validate:"omitempty,max=30"`

	IsGuardian *bool      `json:"member_is_guardian"`
	GuardianID *uuid.UUID `json:"member_guardian_id"`
}

func (r UpdateMemberRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["member_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		updates["member_email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		updates["member_phone"] = strings.TrimSpace(*r.Phone)
	}
	if r.IsGuardian != nil {
		updates["member_is_guardian"] = *r.IsGuardian
	}
	if r.GuardianID != nil {
		updates["member_guardian_id"] = *r.GuardianID
	}
	return updates
}

/* =========================================================
   RESPONSE
   ========================================================= */

type MemberResponse struct {
	MemberID   uuid.UUID  `json:"member_id"`
	Name       string     `json:"member_name"`
	Email      string     `json:"member_email"`
	Phone      *string    `json:"member_phone,omitempty"`
	IsGuardian bool       `json:"member_is_guardian"`
	GuardianID *uuid.UUID `json:"member_guardian_id,omitempty"`
	CreatedAt  time.Time  `json:"member_created_at"`
	UpdatedAt  time.Time  `json:"member_updated_at"`
}

func FromModel(mm *m.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:   mm.MemberID,
		Name:       mm.MemberName,
		Email:      mm.MemberEmail,
		Phone:      mm.MemberPhone,
		IsGuardian: mm.MemberIsGuardian,
		GuardianID: mm.MemberGuardianID,
		CreatedAt:  mm.MemberCreatedAt,
		UpdatedAt:  mm.MemberUpdatedAt,
	}
}

func FromModels(rows []m.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
