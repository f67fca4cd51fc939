package v1

// Application is one admissions submission after normalization.
// Every field is independently optional; an empty string means the value
// was absent or could not be extracted from the source record.
type Application struct {
	// ID is assigned by the source system, or generated locally for
	// synthetic records.
	ID string `json:"id"`

	Program     string `json:"program"`
	Level       string `json:"level"`
	StudyForm   string `json:"studyForm"`
	PaymentType string `json:"paymentType"`

	// SubmittedAt is kept as the source's ISO-8601 string.
	SubmittedAt string `json:"submittedAt"`

	Gender            string `json:"gender"`
	Citizenship       string `json:"citizenship"`
	EducationDocument string `json:"educationDocument"`
	GraduationYear    string `json:"graduationYear"`
	Stream            string `json:"stream"`
	Source            string `json:"source"`
}

// HasProgramDetail reports whether all four cross-tabulation dimensions are present.
func (a *Application) HasProgramDetail() bool {
	return a.Level != "" && a.Program != "" && a.StudyForm != "" && a.PaymentType != ""
}
