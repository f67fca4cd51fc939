// Package fallback produces a synthetic admissions dataset used when the
// live source is unconfigured or unavailable.
package fallback

import (
	"math/rand/v2"
	"time"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
	"github.com/google/uuid"
)

// SubmissionSpread bounds how far back synthetic submissions are placed.
const SubmissionSpread = 30 * 24 * time.Hour

const (
	levelBachelor = "Бакалавриат"
	levelMaster   = "Магистратура"

	formFullTime = "Очная"
	formMixed    = "Очно-заочная"
	formDistance = "Заочная"

	genderMale   = "Мужской"
	genderFemale = "Женский"
)

var streams = []string{
	"17 июля (11.00)",
	"17 июля (14.00)",
	"15 августа (11.00)",
	"15 августа (14.00)",
	"23 июля (МАГ)",
	"30 июля (МАГ)",
	"15 августа (МАГ)",
	"22 августа (МАГ)",
}

var sources = []string{"Интернет", "Друзья", "Реклама", "Социальные сети"}

// bucket describes a run of synthetic bachelor applications for one program.
// The i-th record of the run takes its study form, budget flag and gender
// from the bucket's functions.
type bucket struct {
	program   string
	size      int
	studyForm func(i int) string
	budget    func(i int) bool
	male      func(i int) bool
}

func every(n int) func(int) bool {
	return func(i int) bool { return i%n == 0 }
}

func fixedForm(form string) func(int) string {
	return func(int) string { return form }
}

var bachelorBuckets = []bucket{
	{program: "Менеджмент", size: 89, studyForm: fixedForm(formFullTime), budget: every(2), male: every(2)},
	{
		program: "Психология", size: 76,
		studyForm: func(i int) string {
			if i < 38 {
				return formFullTime
			}
			return formMixed
		},
		budget: every(3), male: every(3),
	},
	{
		program: "Социальная работа", size: 54,
		studyForm: func(i int) string {
			if i%2 == 0 {
				return formFullTime
			}
			return formDistance
		},
		budget: every(4), male: every(2),
	},
	{program: "Юриспруденция", size: 67, studyForm: fixedForm(formFullTime), budget: every(3), male: every(2)},
}

// masterApplications are the fixed, one-off master's records.
var masterApplications = []v1.Application{
	{
		Program: "Менеджмент", Level: levelMaster, StudyForm: formDistance, PaymentType: paymentFlag(false),
		Gender: genderMale, Citizenship: "Беларусь", EducationDocument: "Диплом", GraduationYear: "2023",
		Stream: "30 июля (МАГ)", Source: "Интернет",
	},
	{
		Program: "Психология", Level: levelMaster, StudyForm: formMixed, PaymentType: paymentFlag(false),
		Gender: genderFemale, Citizenship: "Беларусь", EducationDocument: "Диплом", GraduationYear: "2023",
		Stream: "23 июля (МАГ)", Source: "Друзья",
	},
}

// Size is the number of records Generate returns.
func Size() int {
	n := len(masterApplications)
	for _, b := range bachelorBuckets {
		n += b.size
	}
	return n
}

// Generator builds synthetic application sets. The zero value is not
// usable; call New.
type Generator struct {
	jitter func(max time.Duration) time.Duration
	idFn   func() string
}

// New returns a Generator with random submission times and UUID ids.
func New() *Generator {
	return &Generator{
		jitter: func(max time.Duration) time.Duration {
			return rand.N(max)
		},
		idFn: uuid.NewString,
	}
}

// Generate returns the synthetic dataset. Bucket shapes are fixed; only ids
// and submission timestamps vary between calls.
func (g *Generator) Generate(now time.Time) []v1.Application {
	out := make([]v1.Application, 0, Size())

	for _, b := range bachelorBuckets {
		for i := 0; i < b.size; i++ {
			gender := genderFemale
			if b.male(i) {
				gender = genderMale
			}
			out = append(out, v1.Application{
				ID:                g.idFn(),
				Program:           b.program,
				Level:             levelBachelor,
				StudyForm:         b.studyForm(i),
				PaymentType:       paymentFlag(b.budget(i)),
				SubmittedAt:       g.submittedAt(now),
				Gender:            gender,
				Citizenship:       "Беларусь",
				EducationDocument: "Аттестат",
				GraduationYear:    "2024",
				Stream:            streams[i%len(streams)],
				Source:            sources[i%len(sources)],
			})
		}
	}

	for _, m := range masterApplications {
		m.ID = g.idFn()
		m.SubmittedAt = g.submittedAt(now)
		out = append(out, m)
	}
	return out
}

func (g *Generator) submittedAt(now time.Time) string {
	return now.Add(-g.jitter(SubmissionSpread)).UTC().Format(v1.TimestampLayout)
}

func paymentFlag(budget bool) string {
	if budget {
		return "да"
	}
	return "нет"
}
