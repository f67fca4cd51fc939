package postgres

// SQL queries for the applications mirror table

const (
	// queryApplicationsAfterCursor fetches one keyset page of applications.
	// ingest_seq is assigned by the database (BIGSERIAL) and gives a strict
	// total order, so pages never overlap or skip rows.
	queryApplicationsAfterCursor = `
		SELECT
			id, program, level, study_form, payment_type, submitted_at,
			gender, citizenship, education_document, graduation_year,
			stream, source, ingest_seq
		FROM applications
		WHERE ingest_seq > $1
		ORDER BY ingest_seq ASC
		LIMIT $2
	`

	queryApplicationsTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'applications'
		)
	`
)
