package records

import "github.com/zeptools/medoc/nullable"

const DefaultAllergies = "NO REFIERE"

type Medication struct {
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	QuantityInWords nullable.String `json:"quantity_in_words"`
	Instructions    nullable.String `json:"instructions"`
}

// Instruction is one "how to take it" line of the indications list
type Instruction struct {
	Medication  string `json:"medication"`
	Instruction string `json:"instruction"`
}

type PrescriptionRecord struct {
	DocumentRecord

	PatientName     string          `json:"patient_name"`
	PatientAge      nullable.Int    `json:"patient_age"`
	PatientIDNumber nullable.String `json:"patient_id_number"`
	PatientCity     nullable.String `json:"patient_city"`

	Medications  []Medication  `json:"medications"`
	Instructions []Instruction `json:"instructions"`

	Diagnosis     nullable.String `json:"diagnosis"`
	DiagnosisCode nullable.String `json:"diagnosis_code"`
	Allergies     nullable.String `json:"allergies"`

	NextAppointment nullable.Time   `json:"next_appointment"`
	Recommendations nullable.String `json:"recommendations"`
}

var _ Record = (*PrescriptionRecord)(nil)

func (r *PrescriptionRecord) Type() DocType {
	return TypePrescription
}

func (r *PrescriptionRecord) Document() DocumentRecord {
	if r == nil {
		return DocumentRecord{}
	}
	return r.DocumentRecord
}
