package postgres

import (
	"fmt"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanApplicationRow scans one applications row and returns it with its ingest_seq.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanApplicationRow(row scanner) (v1.Application, int64, error) {
	var app v1.Application
	var seq int64

	err := row.Scan(
		&app.ID,
		&app.Program,
		&app.Level,
		&app.StudyForm,
		&app.PaymentType,
		&app.SubmittedAt,
		&app.Gender,
		&app.Citizenship,
		&app.EducationDocument,
		&app.GraduationYear,
		&app.Stream,
		&app.Source,
		&seq,
	)
	if err != nil {
		return v1.Application{}, 0, fmt.Errorf("failed to scan application row: %w", err)
	}
	return app, seq, nil
}
