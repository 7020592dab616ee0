package compose

import (
	"fmt"
	"strings"

	"github.com/zeptools/medoc/datefmt"
	"github.com/zeptools/medoc/nullable"
	"github.com/zeptools/medoc/numwords"
	"github.com/zeptools/medoc/pdfs"
	"github.com/zeptools/medoc/records"
)

func CertificateTemplate() Template {
	return Template{
		Type:   records.TypeCertificate,
		Title:  "Certificado médico",
		Paper:  pdfs.A4Size,
		Margin: 40,
		Filename: func(number string) string {
			return "certificado-medico-" + number + ".pdf"
		},
		Build: buildCertificate,
	}
}

const responsibilityStatement = "Certifico que la información contenida en el presente documento es verídica " +
	"y corresponde a la evaluación médica realizada al paciente en la fecha indicada."

func buildCertificate(rec records.Record) ([]Section, error) {
	r, ok := rec.(*records.CertificateRecord)
	if !ok || r == nil {
		return nil, fmt.Errorf("%w: certificate template needs a certificate record", ErrPrecondition)
	}
	doc := r.DocumentRecord
	return []Section{
		HeaderSection{
			Establishment: orPlaceholder(doc.EstablishmentName),
			Location:      location(doc),
			Title:         "CERTIFICADO MÉDICO",
			Voided:        doc.Voided(),
		},
		TableSection{
			Label: "PatientData",
			Title: "Datos del paciente",
			Rows: []Row{
				{"Nombre", orPlaceholder(r.PatientName)},
				{"Cédula de identidad", r.PatientIDNumber.Or(Placeholder)},
				{"Edad", age(r.PatientAge)},
				{"Dirección", r.PatientAddress.Or(Placeholder)},
				{"Teléfono", r.PatientPhone.Or(Placeholder)},
				{"Institución / Empresa", r.PatientInstitution.Or(Placeholder)},
				{"Ocupación", r.PatientOccupation.Or(Placeholder)},
				{"N° de historia clínica", r.ClinicalHistoryNumber.Or(Placeholder)},
			},
		},
		FreeTextSection{
			Label: "ClinicalContent",
			Title: "Motivo de la enfermedad",
			Paragraphs: []string{
				"Diagnóstico: " + r.Diagnosis.Or(Placeholder),
				"Código CIE-10: " + r.DiagnosisCode.Or(Placeholder),
				"Tipo de contingencia: " + orPlaceholder(r.Contingency.Label()),
				restLine(r.RestHours, r.RestDays),
				"Período de reposo: desde el " + longDate(r.RestFrom) + " hasta el " + longDate(r.RestTo) + ".",
			},
		},
		SignatureSection{
			Label:     "SignatureOfResponsibility",
			Title:     "Firma de responsabilidad",
			Statement: responsibilityStatement,
			Lines:     doctorLines(doc),
		},
		SealSection{
			Label:                "SignatureSeal",
			Establishment:        orPlaceholder(doc.EstablishmentName),
			ProfessionalCaption:  "Firma y Sello del Profesional",
			EstablishmentCaption: "Sello del Establecimiento de Salud",
		},
		FooterSection{
			Lines:     footerLines(doc),
			Reference: "Certificado N° " + orPlaceholder(doc.Number),
		},
	}, nil
}

// restLine gives "Reposo: 24 (veinte y cuatro) horas, 3 (tres) día(s)"
func restLine(hours, days nullable.Int) string {
	var parts []string
	if !hours.IsNil() {
		parts = append(parts, numwords.WithNumeral(int(hours.Int64))+" horas")
	}
	if !days.IsNil() {
		parts = append(parts, numwords.WithNumeral(int(days.Int64))+" día(s)")
	}
	if len(parts) == 0 {
		return "Reposo: " + Placeholder
	}
	return "Reposo: " + strings.Join(parts, ", ")
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return Placeholder
	}
	return s
}

func longDate(d nullable.Date) string {
	if d.IsNil() {
		return Placeholder
	}
	return datefmt.FormatLong(d.Time)
}

func shortDate(d nullable.Date) string {
	if d.IsNil() {
		return Placeholder
	}
	return datefmt.FormatShort(d.Time)
}

func age(n nullable.Int) string {
	if n.IsNil() || n.Int64 < 0 {
		return Placeholder
	}
	if n.Int64 == 1 {
		return "1 año"
	}
	return fmt.Sprintf("%d años", n.Int64)
}

// location gives "Quito, 5 de marzo del 2024"
func location(doc records.DocumentRecord) string {
	date := longDate(doc.IssueDate)
	if city := doc.EstablishmentCity.Or(""); city != "" {
		return city + ", " + date
	}
	return date
}

func doctorLines(doc records.DocumentRecord) []string {
	return []string{
		orPlaceholder(doc.DoctorName),
		doc.DoctorSpecialty.Or(Placeholder),
		"Reg. profesional: " + doc.DoctorCredential.Or(Placeholder),
		"Correo: " + doc.DoctorEmail.Or(Placeholder),
	}
}

func footerLines(doc records.DocumentRecord) []string {
	var contact []string
	if a := doc.EstablishmentAddress.Or(""); a != "" {
		contact = append(contact, a)
	}
	if p := doc.EstablishmentPhone.Or(""); p != "" {
		contact = append(contact, "Telf.: "+p)
	}
	line := Placeholder
	if len(contact) > 0 {
		line = strings.Join(contact, " · ")
	}
	return []string{orPlaceholder(doc.EstablishmentName), line}
}
