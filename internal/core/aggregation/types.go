package aggregation

import v1 "github.com/dab97/stats-rgsu/internal/api/v1"

// Dimension describes one categorical breakdown of the aggregation result.
type Dimension struct {
	// Name is the JSON field the breakdown is published under.
	Name string

	// Value returns the record's value for this dimension ("" when absent).
	Value func(app *v1.Application) string

	// Assign stores the finished breakdown on the result.
	Assign func(stats *v1.Stats, entries []v1.CountEntry)
}

// Dimensions is the registry of plain (name, count) breakdowns.
// byProgram is not listed here because its entries also carry a level;
// Aggregate handles it alongside the registry.
var Dimensions = []Dimension{
	{
		Name:   "byEducationLevel",
		Value:  func(a *v1.Application) string { return a.Level },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByEducationLevel = e },
	},
	{
		Name:   "byStudyForm",
		Value:  func(a *v1.Application) string { return a.StudyForm },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByStudyForm = e },
	},
	{
		Name:   "byPaymentType",
		Value:  func(a *v1.Application) string { return a.PaymentType },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByPaymentType = e },
	},
	{
		Name:   "byGender",
		Value:  func(a *v1.Application) string { return a.Gender },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByGender = e },
	},
	{
		Name:   "byCitizenship",
		Value:  func(a *v1.Application) string { return a.Citizenship },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByCitizenship = e },
	},
	{
		Name:   "byEducationDocument",
		Value:  func(a *v1.Application) string { return a.EducationDocument },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByEducationDocument = e },
	},
	{
		Name:   "byGraduationYear",
		Value:  func(a *v1.Application) string { return a.GraduationYear },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByGraduationYear = e },
	},
	{
		Name:   "byStream",
		Value:  func(a *v1.Application) string { return a.Stream },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.ByStream = e },
	},
	{
		Name:   "bySource",
		Value:  func(a *v1.Application) string { return a.Source },
		Assign: func(s *v1.Stats, e []v1.CountEntry) { s.BySource = e },
	},
}

// DetailKey identifies one cross-tabulation cell. Being a struct of the four
// labels, two distinct combinations can never share a key.
type DetailKey struct {
	Level       string
	Program     string
	StudyForm   string
	PaymentType string
}
