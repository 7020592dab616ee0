package compose

import (
	"strings"
	"time"

	"github.com/zeptools/medoc/nullable"
	"github.com/zeptools/medoc/pdfs"
	"github.com/zeptools/medoc/records"
	"github.com/zeptools/medoc/textlayout"
)

// 5pt per rune at 10pt
var mono = textlayout.MonoMetrics{Advance: 0.5}

func monoEngine(opts ...Option) *Engine {
	opts = append([]Option{WithMetrics(func() textlayout.Metrics { return mono })}, opts...)
	return NewEngine(opts...)
}

func baseDocument(number string) records.DocumentRecord {
	return records.DocumentRecord{
		Number:               number,
		Status:               records.StatusActive,
		IssueDate:            nullable.DateOf(2024, time.March, 5),
		EstablishmentName:    "Consultorio Médico San Rafael",
		EstablishmentAddress: nullable.StringOf("Av. Amazonas N34-12"),
		EstablishmentCity:    nullable.StringOf("Quito"),
		EstablishmentPhone:   nullable.StringOf("02 245 1122"),
		DoctorName:           "Dra. María Pérez",
		DoctorCredential:     nullable.StringOf("1712345678"),
		DoctorSpecialty:      nullable.StringOf("Medicina Familiar"),
		DoctorEmail:          nullable.StringOf("mperez@sanrafael.ec"),
	}
}

func sampleCertificate() *records.CertificateRecord {
	return &records.CertificateRecord{
		DocumentRecord:  baseDocument("000123"),
		PatientName:     "Juan Andrade",
		PatientAge:      nullable.IntOf(41),
		PatientIDNumber: nullable.StringOf("1709876543"),
		Diagnosis:       nullable.StringOf("Faringitis aguda"),
		DiagnosisCode:   nullable.StringOf("J02.9"),
		Contingency:     records.ContingencyGeneralIllness,
		RestHours:       nullable.IntOf(24),
		RestDays:        nullable.IntOf(3),
		RestFrom:        nullable.DateOf(2024, time.March, 5),
		RestTo:          nullable.DateOf(2024, time.March, 7),
	}
}

func samplePrescription() *records.PrescriptionRecord {
	return &records.PrescriptionRecord{
		DocumentRecord: baseDocument("77"),
		PatientName:    "Ana Torres",
		PatientAge:     nullable.IntOf(29),
		Medications: []records.Medication{
			{Name: "Amoxicilina 500 mg cápsulas", Quantity: 21},
			{Name: "Paracetamol 1 g tabletas", Quantity: 10, Instructions: nullable.StringOf("Tomar cada 8 horas si hay fiebre")},
		},
		Instructions: []records.Instruction{
			{Medication: "Amoxicilina", Instruction: "1 cápsula cada 8 horas por 7 días"},
		},
		Diagnosis:       nullable.StringOf("Amigdalitis bacteriana"),
		DiagnosisCode:   nullable.StringOf("J03.9"),
		Recommendations: nullable.StringOf("Reposo relativo. Abundantes líquidos."),
		NextAppointment: nullable.TimeOf(time.Date(2024, 3, 12, 10, 30, 0, 0, time.UTC)),
	}
}

func textsOf(cmds []pdfs.Command, section string) []string {
	var out []string
	for _, c := range cmds {
		if c.Op == pdfs.OpText && (section == "" || c.Section == section) {
			out = append(out, c.Text)
		}
	}
	return out
}

func joinedText(cmds []pdfs.Command, section string) string {
	return strings.Join(textsOf(cmds, section), " ")
}
