package compose

import (
	"fmt"
	"strconv"

	"github.com/zeptools/medoc/datefmt"
	"github.com/zeptools/medoc/numwords"
	"github.com/zeptools/medoc/pdfs"
	"github.com/zeptools/medoc/records"
)

func PrescriptionTemplate() Template {
	return Template{
		Type:   records.TypePrescription,
		Title:  "Receta médica",
		Paper:  pdfs.A4Size,
		Margin: 36,
		Filename: func(number string) string {
			return "Receta_" + number + ".pdf"
		},
		Build: buildPrescription,
	}
}

func buildPrescription(rec records.Record) ([]Section, error) {
	r, ok := rec.(*records.PrescriptionRecord)
	if !ok || r == nil {
		return nil, fmt.Errorf("%w: prescription template needs a prescription record", ErrPrecondition)
	}
	if len(r.Medications) == 0 {
		return nil, fmt.Errorf("%w: prescription %q has no medications", ErrPrecondition, r.Number)
	}
	doc := r.DocumentRecord

	sections := []Section{
		HeaderSection{
			Establishment: orPlaceholder(doc.EstablishmentName),
			Services:      doc.EstablishmentServices.Or(""),
			Location:      location(doc),
			Title:         "RECETA MÉDICA",
			Voided:        doc.Voided(),
		},
		TableSection{
			Label: "PatientInfoTable",
			Title: "Datos del paciente",
			Rows: []Row{
				{"Paciente", orPlaceholder(r.PatientName)},
				{"Cédula de identidad", r.PatientIDNumber.Or(Placeholder)},
				{"Edad", age(r.PatientAge)},
				{"Ciudad", r.PatientCity.Or(Placeholder)},
				{"Fecha de emisión", shortDate(doc.IssueDate)},
			},
		},
		medicationList(r),
		FreeTextSection{
			Label: "DiagnosisAndAllergies",
			Title: "Diagnóstico y alergias",
			Paragraphs: []string{
				"Diagnóstico: " + r.Diagnosis.Or(Placeholder),
				"Código CIE-10: " + r.DiagnosisCode.Or(Placeholder),
				"Antecedentes de alergias: " + r.Allergies.Or(records.DefaultAllergies),
			},
		},
	}
	if !r.Recommendations.IsBlank() {
		sections = append(sections, FreeTextSection{
			Label:      "Recommendations",
			Title:      "Recomendaciones no farmacológicas",
			Paragraphs: []string{r.Recommendations.Or("")},
		})
	}
	if !r.NextAppointment.IsNil() {
		at := r.NextAppointment.Time
		sections = append(sections, FreeTextSection{
			Label:      "NextAppointment",
			Title:      "Próxima cita",
			Paragraphs: []string{datefmt.FormatLong(at) + " a las " + datefmt.FormatClock(at)},
		})
	}
	return append(sections,
		SignatureSection{
			Label:   "DoctorSignature",
			Lines:   doctorLines(doc),
			Caption: "Firma y sello del médico tratante",
		},
		FooterSection{
			Lines:     footerLines(doc),
			Reference: "Receta N° " + orPlaceholder(doc.Number),
			Banner:    true,
		},
	), nil
}

func medicationList(r *records.PrescriptionRecord) MedicationListSection {
	items := make([]MedicationItem, 0, len(r.Medications))
	for _, m := range r.Medications {
		items = append(items, MedicationItem{
			Name:         orPlaceholder(m.Name),
			Quantity:     quantity(m),
			Instructions: m.Instructions.Or(""),
		})
	}
	indications := make([]Row, 0, len(r.Instructions))
	for _, in := range r.Instructions {
		indications = append(indications, Row{Label: orPlaceholder(in.Medication), Value: orPlaceholder(in.Instruction)})
	}
	return MedicationListSection{
		Label:            "MedicationList",
		Title:            "Prescripción (Rp.)",
		Items:            items,
		IndicationsTitle: "Indicaciones",
		Indications:      indications,
	}
}

// quantity gives "21 (veinte y uno)", preferring the words written on the record
func quantity(m records.Medication) string {
	if m.Quantity <= 0 {
		return Placeholder
	}
	if w := m.QuantityInWords.Or(""); w != "" {
		return strconv.Itoa(m.Quantity) + " (" + w + ")"
	}
	return numwords.WithNumeral(m.Quantity)
}
