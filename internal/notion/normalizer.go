package notion

import v1 "github.com/dab97/stats-rgsu/internal/api/v1"

// Page is one database row as returned by the query endpoint.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property names of the admissions database.
const (
	LabelProgram           = "Приоритетное направление"
	LabelLevel             = "Вид образования"
	LabelStudyForm         = "Форма обучения"
	LabelPaymentType       = "Бюджет"
	LabelSubmittedAt       = "Start Time"
	LabelGender            = "Пол"
	LabelCitizenship       = "Гражданство"
	LabelEducationDocument = "Документ об образовании"
	LabelGraduationYear    = "Год выдачи"
	LabelStream            = "Поток (Русский)"
	LabelSource            = "Откуда узнали о нас?"
)

type fieldMapping struct {
	label string
	set   func(app *v1.Application, value string)
}

// fieldMappings maps each property label to exactly one Application field.
var fieldMappings = []fieldMapping{
	{LabelProgram, func(a *v1.Application, v string) { a.Program = v }},
	{LabelLevel, func(a *v1.Application, v string) { a.Level = v }},
	{LabelStudyForm, func(a *v1.Application, v string) { a.StudyForm = v }},
	{LabelPaymentType, func(a *v1.Application, v string) { a.PaymentType = v }},
	{LabelSubmittedAt, func(a *v1.Application, v string) { a.SubmittedAt = v }},
	{LabelGender, func(a *v1.Application, v string) { a.Gender = v }},
	{LabelCitizenship, func(a *v1.Application, v string) { a.Citizenship = v }},
	{LabelEducationDocument, func(a *v1.Application, v string) { a.EducationDocument = v }},
	{LabelGraduationYear, func(a *v1.Application, v string) { a.GraduationYear = v }},
	{LabelStream, func(a *v1.Application, v string) { a.Stream = v }},
	{LabelSource, func(a *v1.Application, v string) { a.Source = v }},
}

// Normalize maps a raw page onto the fixed Application shape. Missing or
// unsupported properties leave the field empty.
func Normalize(page Page) v1.Application {
	app := v1.Application{ID: page.ID}
	for _, m := range fieldMappings {
		var prop *Property
		if p, ok := page.Properties[m.label]; ok {
			prop = &p
		}
		m.set(&app, ExtractFieldValue(prop))
	}
	return app
}

// NormalizePages normalizes pages in order.
func NormalizePages(pages []Page) []v1.Application {
	apps := make([]v1.Application, 0, len(pages))
	for _, page := range pages {
		apps = append(apps, Normalize(page))
	}
	return apps
}
