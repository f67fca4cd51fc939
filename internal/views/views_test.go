package views

import (
	"testing"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetails() []v1.ProgramDetail {
	return []v1.ProgramDetail{
		{Level: "Бакалавриат", Program: "Менеджмент", StudyForm: "Очная", PaymentType: "да", Count: 45},
		{Level: "Бакалавриат", Program: "Менеджмент", StudyForm: "Очная", PaymentType: "нет", Count: 44},
		{Level: "Бакалавриат", Program: "Психология", StudyForm: "Очная", PaymentType: "нет", Count: 25},
		{Level: "Бакалавриат", Program: "Психология", StudyForm: "Очно-заочная", PaymentType: "да", Count: 13},
		{Level: "Магистратура", Program: "Менеджмент", StudyForm: "Заочная", PaymentType: "нет", Count: 1},
		{Level: "Бакалавриат", Program: "Психология", StudyForm: "Очная", PaymentType: "частично", Count: 3},
	}
}

func TestSplitByPayment(t *testing.T) {
	budget, paid := SplitByPayment(sampleDetails())

	assert.Equal(t, []v1.CountEntry{
		{Name: "Менеджмент", Count: 45},
		{Name: "Психология", Count: 13},
	}, budget)
	assert.Equal(t, []v1.CountEntry{
		{Name: "Менеджмент", Count: 45},
		{Name: "Психология", Count: 25},
	}, paid)
}

func TestSplitByPayment_EmptyIsNotNil(t *testing.T) {
	budget, paid := SplitByPayment(nil)
	require.NotNil(t, budget)
	require.NotNil(t, paid)
	require.Empty(t, budget)
}

func TestLevelTotals(t *testing.T) {
	assert.Equal(t, []v1.CountEntry{
		{Name: "Бакалавриат", Count: 130},
		{Name: "Магистратура", Count: 1},
	}, LevelTotals(sampleDetails()))
}

func TestCountApplications(t *testing.T) {
	details := sampleDetails()

	tests := []struct {
		name                               string
		level, program, studyForm, payment string
		want                               int
	}{
		{name: "level only", level: "Бакалавриат", want: 130},
		{name: "level and program", level: "Бакалавриат", program: "Психология", want: 41},
		{name: "budget cell", level: "Бакалавриат", program: "Менеджмент", studyForm: "Очная", payment: PaymentBudget, want: 45},
		{name: "paid cell", level: "Бакалавриат", program: "Психология", studyForm: "Очная", payment: PaymentPaid, want: 25},
		{name: "unknown level", level: "Аспирантура", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CountApplications(details, tc.level, tc.program, tc.studyForm, tc.payment))
		})
	}
}

func TestCompetitionRatio(t *testing.T) {
	assert.Equal(t, NoSeats, CompetitionRatio(12, 0))
	assert.Equal(t, "0.0", CompetitionRatio(0, 10))
	assert.Equal(t, "4.5", CompetitionRatio(45, 10))
	assert.Equal(t, "1.6", CompetitionRatio(44, 28))
	assert.Equal(t, "0.3", CompetitionRatio(1, 3))
}

func TestClassifyGender(t *testing.T) {
	split := ClassifyGender([]v1.CountEntry{
		{Name: "Мужской", Count: 140},
		{Name: "ЖЕНСКИЙ", Count: 148},
		{Name: "female", Count: 2},
		{Name: "M", Count: 1},
		{Name: "Не указан", Count: 7},
	})

	assert.Equal(t, GenderSplit{Male: 141, Female: 150, Total: 291}, split)
}

func TestBuilder_SortStreams(t *testing.T) {
	b := NewBuilder(nil, nil)

	in := []v1.CountEntry{
		{Name: "Вне графика", Count: 1},
		{Name: "22 августа (МАГ)", Count: 2},
		{Name: "17 июля (11.00)", Count: 3},
		{Name: "Дополнительный", Count: 4},
		{Name: "15 августа (11.00)", Count: 5},
	}
	out := b.SortStreams(in)

	assert.Equal(t, []v1.CountEntry{
		{Name: "17 июля (11.00)", Count: 3},
		{Name: "15 августа (11.00)", Count: 5},
		{Name: "22 августа (МАГ)", Count: 2},
		{Name: "Вне графика", Count: 1},
		{Name: "Дополнительный", Count: 4},
	}, out)
	// input untouched
	assert.Equal(t, "Вне графика", in[0].Name)
}

func TestBuilder_Build(t *testing.T) {
	plan, err := ParsePlan([]byte(`
entries:
  - level: Бакалавриат
    program: Менеджмент
    study_form: Очная
    payment: Бюджет
    seats: 37
  - level: Магистратура
    program: Психология
    study_form: Очно-заочная
    payment: Платно
    seats: 0
`))
	require.NoError(t, err)

	b := NewBuilder(plan, []string{"b", "a"})
	v := b.Build(v1.Stats{
		ProgramDetails: sampleDetails(),
		ByGender:       []v1.CountEntry{{Name: "Мужской", Count: 1}},
		ByStream:       []v1.CountEntry{{Name: "a", Count: 1}, {Name: "b", Count: 2}},
		LastUpdated:    "2025-07-20T10:00:00.000Z",
		DataSource:     v1.DataSourceLive,
	})

	require.Len(t, v.Plan, 2)
	assert.Equal(t, 45, v.Plan[0].Applications)
	assert.Equal(t, "1.2", v.Plan[0].Ratio)
	assert.Equal(t, 0, v.Plan[1].Applications)
	assert.Equal(t, NoSeats, v.Plan[1].Ratio)
	assert.Equal(t, plan.Fingerprint, v.PlanFingerprint)
	assert.Equal(t, []v1.CountEntry{{Name: "b", Count: 2}, {Name: "a", Count: 1}}, v.Streams)
	assert.Equal(t, GenderSplit{Male: 1, Total: 1}, v.Gender)
	assert.Equal(t, v1.DataSourceLive, v.DataSource)
}
