package records

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownType = errors.New("records: unknown document type")

// Decode unmarshals a JSON payload into the record type named by t
func Decode(t DocType, payload []byte) (Record, error) {
	var rec Record
	switch t {
	case TypeCertificate:
		rec = &CertificateRecord{}
	case TypePrescription:
		rec = &PrescriptionRecord{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("records: decode %s: %w", t, err)
	}
	return rec, nil
}
