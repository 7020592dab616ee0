package records

import "github.com/zeptools/medoc/nullable"

type Contingency string

const (
	ContingencyGeneralIllness      Contingency = "general_illness"
	ContingencyWorkAccident        Contingency = "work_accident"
	ContingencyOccupationalIllness Contingency = "occupational_illness"
	ContingencyCommonAccident      Contingency = "common_accident"
)

var contingencyLabels = map[Contingency]string{
	ContingencyGeneralIllness:      "Enfermedad general",
	ContingencyWorkAccident:        "Accidente de trabajo",
	ContingencyOccupationalIllness: "Enfermedad profesional",
	ContingencyCommonAccident:      "Accidente común",
}

// Label is the printed Spanish name, "" when unknown
func (c Contingency) Label() string {
	return contingencyLabels[c]
}

type CertificateRecord struct {
	DocumentRecord

	PatientName           string          `json:"patient_name"`
	PatientAge            nullable.Int    `json:"patient_age"`
	PatientIDNumber       nullable.String `json:"patient_id_number"`
	PatientAddress        nullable.String `json:"patient_address"`
	PatientPhone          nullable.String `json:"patient_phone"`
	PatientInstitution    nullable.String `json:"patient_institution"`
	PatientOccupation     nullable.String `json:"patient_occupation"`
	ClinicalHistoryNumber nullable.String `json:"clinical_history_number"`

	Diagnosis     nullable.String `json:"diagnosis"`
	DiagnosisCode nullable.String `json:"diagnosis_code"`
	Contingency   Contingency     `json:"contingency"`

	RestHours nullable.Int  `json:"rest_hours"`
	RestDays  nullable.Int  `json:"rest_days"`
	RestFrom  nullable.Date `json:"rest_from"`
	RestTo    nullable.Date `json:"rest_to"`
}

var _ Record = (*CertificateRecord)(nil)

func (r *CertificateRecord) Type() DocType {
	return TypeCertificate
}

func (r *CertificateRecord) Document() DocumentRecord {
	if r == nil {
		return DocumentRecord{}
	}
	return r.DocumentRecord
}
