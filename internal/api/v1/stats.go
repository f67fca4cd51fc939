package v1

// TimestampLayout is the millisecond UTC ISO-8601 form used for lastUpdated.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DataSource tells consumers whether the numbers come from the live source
// or from the synthetic fallback dataset.
type DataSource string

const (
	DataSourceLive     DataSource = "live"
	DataSourceFallback DataSource = "fallback"
)

// CountEntry is one (value, count) pair of a breakdown.
type CountEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProgramEntry is a byProgram breakdown entry. Level is the level of the
// first record that carried this program name.
type ProgramEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Level string `json:"level"`
}

// ProgramDetail is one cell of the level × program × study form × payment
// type cross-tabulation.
type ProgramDetail struct {
	Program     string `json:"program"`
	Level       string `json:"level"`
	StudyForm   string `json:"studyForm"`
	PaymentType string `json:"paymentType"`
	Count       int    `json:"count"`
}

// Stats is the aggregation result served to the dashboard.
// Field names are part of the presentation contract; do not rename.
type Stats struct {
	TotalApplications   int             `json:"totalApplications"`
	ByEducationLevel    []CountEntry    `json:"byEducationLevel"`
	ByProgram           []ProgramEntry  `json:"byProgram"`
	ByStudyForm         []CountEntry    `json:"byStudyForm"`
	ByPaymentType       []CountEntry    `json:"byPaymentType"`
	ByGender            []CountEntry    `json:"byGender"`
	ByCitizenship       []CountEntry    `json:"byCitizenship"`
	ByEducationDocument []CountEntry    `json:"byEducationDocument"`
	ByGraduationYear    []CountEntry    `json:"byGraduationYear"`
	ByStream            []CountEntry    `json:"byStream"`
	BySource            []CountEntry    `json:"bySource"`
	ProgramDetails      []ProgramDetail `json:"programDetails"`
	LastUpdated         string          `json:"lastUpdated"`
	DataSource          DataSource      `json:"dataSource"`
}
