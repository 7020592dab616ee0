// Package records holds the clinical records the composition engine renders.
// Optional values use the nullable types so absent JSON keys and SQL NULLs
// decode to an explicit "not set" state.
package records

import (
	"github.com/zeptools/medoc/nullable"
)

type DocType string

const (
	TypeCertificate  DocType = "medical_certificate"
	TypePrescription DocType = "medical_prescription"
)

func (t DocType) Valid() bool {
	return t == TypeCertificate || t == TypePrescription
}

type Status string

const (
	StatusActive Status = "active"
	StatusVoided Status = "voided"
)

// Record is implemented by every renderable document record
type Record interface {
	Type() DocType
	Document() DocumentRecord
	Stamp(number string, status Status)
}

// DocumentRecord carries the fields shared by every clinical document
type DocumentRecord struct {
	Number string `json:"document_number"`
	Status Status `json:"status"`

	IssueDate nullable.Date `json:"issue_date"`

	EstablishmentName     string          `json:"establishment_name"`
	EstablishmentAddress  nullable.String `json:"establishment_address"`
	EstablishmentCity     nullable.String `json:"establishment_city"`
	EstablishmentPhone    nullable.String `json:"establishment_phone"`
	EstablishmentServices nullable.String `json:"establishment_services"`

	DoctorName       string          `json:"doctor_name"`
	DoctorCredential nullable.String `json:"doctor_credential"`
	DoctorSpecialty  nullable.String `json:"doctor_specialty"`
	DoctorEmail      nullable.String `json:"doctor_email"`
}

func (d DocumentRecord) Voided() bool {
	return d.Status == StatusVoided
}

// Stamp overwrites the number and status with the values held by the
// record's owner, e.g. the row that stored the payload.
func (d *DocumentRecord) Stamp(number string, status Status) {
	d.Number = number
	if status != "" {
		d.Status = status
	}
}
