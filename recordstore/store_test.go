package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeptools/medoc/db/sqldb"
	"github.com/zeptools/medoc/nullable"
	"github.com/zeptools/medoc/records"
	"go.uber.org/zap"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = r.vals[i].(string)
		case *[]byte:
			*v = r.vals[i].([]byte)
		}
	}
	return nil
}

type fakeResult struct{ n int64 }

func (r fakeResult) RowsAffected() (int64, error) { return r.n, nil }

type call struct {
	query string
	args  []any
}

type fakeHandle struct {
	row      fakeRow
	affected int64
	execErr  error
	calls    []call
}

func (h *fakeHandle) Exec(_ context.Context, q string, args ...any) (sqldb.Result, error) {
	h.calls = append(h.calls, call{q, args})
	if h.execErr != nil {
		return nil, h.execErr
	}
	return fakeResult{h.affected}, nil
}

func (h *fakeHandle) QueryRows(context.Context, string, ...any) (sqldb.Rows, error) {
	return nil, errors.New("not used")
}

func (h *fakeHandle) QueryRow(_ context.Context, q string, args ...any) sqldb.Row {
	h.calls = append(h.calls, call{q, args})
	return h.row
}

func newStore(t *testing.T, h *fakeHandle, dbtype string) *Store {
	t.Helper()
	s, err := NewWithHandle(h, dbtype, zap.NewNop())
	require.NoError(t, err)
	return s
}

func prescription() *records.PrescriptionRecord {
	return &records.PrescriptionRecord{
		DocumentRecord: records.DocumentRecord{
			Number:            "RX-77",
			Status:            records.StatusActive,
			IssueDate:         nullable.DateOf(2024, 3, 5),
			EstablishmentName: "Consultorio San Rafael",
			DoctorName:        "Dra. Ana Torres",
		},
		PatientName: "Luis Pérez",
		Medications: []records.Medication{{Name: "Paracetamol 500 mg", Quantity: 12}},
	}
}

func TestFindByNumber(t *testing.T) {
	payload, err := json.Marshal(prescription())
	require.NoError(t, err)

	h := &fakeHandle{row: fakeRow{vals: []any{"RX-77", "medical_prescription", "voided", payload}}}
	s := newStore(t, h, "pgsql")

	rec, err := s.FindByNumber(context.Background(), "RX-77")
	require.NoError(t, err)
	require.IsType(t, &records.PrescriptionRecord{}, rec)
	assert.Equal(t, "Luis Pérez", rec.(*records.PrescriptionRecord).PatientName)
	assert.True(t, rec.Document().Voided(), "row status wins over payload")

	require.Len(t, h.calls, 1)
	assert.Contains(t, h.calls[0].query, "WHERE number = $1")
	assert.Equal(t, []any{"RX-77"}, h.calls[0].args)
}

func TestFindByNumberMySQLPlaceholders(t *testing.T) {
	h := &fakeHandle{row: fakeRow{err: sqldb.ErrNoRows}}
	s := newStore(t, h, "mysql")
	_, err := s.FindByNumber(context.Background(), "X")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, h.calls[0].query, "WHERE number = ?")
}

func TestFindByNumberErrors(t *testing.T) {
	s := newStore(t, &fakeHandle{}, "pgsql")
	_, err := s.FindByNumber(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyNumber)

	boom := errors.New("connection reset")
	s = newStore(t, &fakeHandle{row: fakeRow{err: boom}}, "pgsql")
	_, err = s.FindByNumber(context.Background(), "1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)

	h := &fakeHandle{row: fakeRow{vals: []any{"1", "lab_order", "active", []byte(`{}`)}}}
	s = newStore(t, h, "pgsql")
	_, err = s.FindByNumber(context.Background(), "1")
	assert.ErrorIs(t, err, records.ErrUnknownType)
}

func TestSaveUsesDialectUpsert(t *testing.T) {
	for dbtype, want := range map[string]string{
		"pgsql": "ON CONFLICT (number) DO UPDATE",
		"mysql": "ON DUPLICATE KEY UPDATE",
	} {
		t.Run(dbtype, func(t *testing.T) {
			h := &fakeHandle{affected: 1}
			s := newStore(t, h, dbtype)
			require.NoError(t, s.Save(context.Background(), prescription()))

			require.Len(t, h.calls, 1)
			assert.Contains(t, h.calls[0].query, want)
			args := h.calls[0].args
			require.Len(t, args, 4)
			assert.Equal(t, "RX-77", args[0])
			assert.Equal(t, "medical_prescription", args[1])
			assert.Equal(t, "active", args[2])

			decoded, err := records.Decode(records.TypePrescription, args[3].([]byte))
			require.NoError(t, err)
			assert.Equal(t, "Luis Pérez", decoded.(*records.PrescriptionRecord).PatientName)
		})
	}
}

func TestSaveRejectsEmptyNumber(t *testing.T) {
	rec := prescription()
	rec.Number = ""
	err := newStore(t, &fakeHandle{}, "pgsql").Save(context.Background(), rec)
	assert.ErrorIs(t, err, ErrEmptyNumber)
}

func TestVoid(t *testing.T) {
	h := &fakeHandle{affected: 1}
	s := newStore(t, h, "pgsql")
	require.NoError(t, s.Void(context.Background(), "RX-77"))
	assert.Equal(t, []any{"voided", "RX-77"}, h.calls[0].args)
	assert.Contains(t, h.calls[0].query, "SET status = $1")

	h.affected = 0
	assert.ErrorIs(t, s.Void(context.Background(), "nope"), ErrNotFound)
}

func TestEnsureSchema(t *testing.T) {
	h := &fakeHandle{}
	require.NoError(t, newStore(t, h, "mysql").EnsureSchema(context.Background()))
	assert.Contains(t, h.calls[0].query, "payload    JSON")

	h = &fakeHandle{execErr: errors.New("denied")}
	assert.Error(t, newStore(t, h, "pgsql").EnsureSchema(context.Background()))
}
