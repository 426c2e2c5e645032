// file: internals/features/library/dto/member_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	model "perpustakaan_backend/internals/features/library/model"
	helper "perpustakaan_backend/internals/helpers"
)

type MemberCreateRequest struct {
	FullName           string    `json:"full_name" validate:"required,min=1,max=255"`
	ContactInformation *string   `json:"contact_information,omitempty" validate:"omitempty,max=255"`
	AddressLine1       *string   `json:"address_line_1,omitempty" validate:"omitempty,max=255"`
	AddressLine2       *string   `json:"address_line_2,omitempty" validate:"omitempty,max=255"`
	City               string    `json:"city" validate:"required,min=1,max=128"`
	PostCode           string    `json:"post_code" validate:"required,min=1,max=16"`
	JoinDate           time.Time `json:"join_date" validate:"required"`
	ExpiryDate         time.Time `json:"expiry_date" validate:"required"`
}

type MemberUpdateRequest struct {
	FullName           *string            `json:"full_name,omitempty"`
	ContactInformation helper.Opt[string] `json:"contact_information"`
	AddressLine1       helper.Opt[string] `json:"address_line_1"`
	AddressLine2       helper.Opt[string] `json:"address_line_2"`
	City               *string            `json:"city,omitempty"`
	PostCode           *string            `json:"post_code,omitempty"`
	JoinDate           *time.Time         `json:"join_date,omitempty"`
	ExpiryDate         *time.Time         `json:"expiry_date,omitempty"`
}

func (r *MemberCreateRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.ContactInformation = trimPtr(r.ContactInformation)
	r.AddressLine1 = trimPtr(r.AddressLine1)
	r.AddressLine2 = trimPtr(r.AddressLine2)
	r.City = strings.TrimSpace(r.City)
	r.PostCode = strings.TrimSpace(r.PostCode)
}

func (r *MemberUpdateRequest) Normalize() {
	r.FullName = trimPtr(r.FullName)
	r.City = trimPtr(r.City)
	r.PostCode = trimPtr(r.PostCode)
}

func (r *MemberUpdateRequest) Validate() error {
	if r.FullName != nil && len(*r.FullName) > 255 {
		return errors.New("full_name: max=255")
	}
	if r.City != nil && len(*r.City) > 128 {
		return errors.New("city: max=128")
	}
	if r.PostCode != nil && len(*r.PostCode) > 16 {
		return errors.New("post_code: max=16")
	}
	return nil
}

func (r *MemberCreateRequest) ToModel() *model.MemberModel {
	return &model.MemberModel{
		FullName:           r.FullName,
		ContactInformation: r.ContactInformation,
		AddressLine1:       r.AddressLine1,
		AddressLine2:       r.AddressLine2,
		City:               r.City,
		PostCode:           r.PostCode,
		JoinDate:           r.JoinDate,
		ExpiryDate:         r.ExpiryDate,
	}
}

func (r *MemberUpdateRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.FullName != nil {
		patch["full_name"] = *r.FullName
	}
	if r.ContactInformation.Set {
		patch["contact_information"] = r.ContactInformation.Ptr()
	}
	if r.AddressLine1.Set {
		patch["address_line_1"] = r.AddressLine1.Ptr()
	}
	if r.AddressLine2.Set {
		patch["address_line_2"] = r.AddressLine2.Ptr()
	}
	if r.City != nil {
		patch["city"] = *r.City
	}
	if r.PostCode != nil {
		patch["post_code"] = *r.PostCode
	}
	if r.JoinDate != nil {
		patch["join_date"] = *r.JoinDate
	}
	if r.ExpiryDate != nil {
		patch["expiry_date"] = *r.ExpiryDate
	}
	return patch
}
