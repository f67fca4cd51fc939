// Package views computes the dashboard's secondary views (budget/paid
// split, plan vs actual, gender split, stream ordering) from an
// aggregation result.
package views

import (
	"sort"
	"strings"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoSeats is shown in place of a competition ratio when the plan has no seats.
const NoSeats = "_"

// Payment flags as they appear in programDetails.
const (
	flagBudget = "да"
	flagPaid   = "нет"
)

// DefaultStreamOrder is the chronological order of admission exam streams.
var DefaultStreamOrder = []string{
	"17 июля (11.00)",
	"17 июля (14.00)",
	"15 августа (11.00)",
	"15 августа (14.00)",
	"23 июля (МАГ)",
	"30 июля (МАГ)",
	"15 августа (МАГ)",
	"22 августа (МАГ)",
}

// PlanRow is a plan cell with the applications matched against it.
type PlanRow struct {
	PlanEntry
	Applications int    `json:"applications"`
	Ratio        string `json:"ratio"`
}

// GenderSplit counts male and female applicants.
type GenderSplit struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Total  int `json:"total"`
}

// Views is the response of the views endpoint.
type Views struct {
	BudgetPrograms  []v1.CountEntry `json:"budgetPrograms"`
	PaidPrograms    []v1.CountEntry `json:"paidPrograms"`
	LevelTotals     []v1.CountEntry `json:"levelTotals"`
	Plan            []PlanRow       `json:"plan"`
	PlanFingerprint string          `json:"planFingerprint"`
	Gender          GenderSplit     `json:"gender"`
	Streams         []v1.CountEntry `json:"streams"`
	LastUpdated     string          `json:"lastUpdated"`
	DataSource      v1.DataSource   `json:"dataSource"`
}

// Builder derives Views from aggregation results.
type Builder struct {
	plan        *Plan
	streamOrder map[string]int
}

// NewBuilder creates a Builder. A nil plan is treated as empty; an empty
// stream order falls back to DefaultStreamOrder.
func NewBuilder(plan *Plan, streamOrder []string) *Builder {
	if plan == nil {
		plan = &Plan{}
	}
	if len(streamOrder) == 0 {
		streamOrder = DefaultStreamOrder
	}
	order := make(map[string]int, len(streamOrder))
	for i, s := range streamOrder {
		if _, ok := order[s]; !ok {
			order[s] = i
		}
	}
	return &Builder{plan: plan, streamOrder: order}
}

// Build computes every view from stats.
func (b *Builder) Build(stats v1.Stats) Views {
	budget, paid := SplitByPayment(stats.ProgramDetails)
	return Views{
		BudgetPrograms:  budget,
		PaidPrograms:    paid,
		LevelTotals:     LevelTotals(stats.ProgramDetails),
		Plan:            b.planRows(stats.ProgramDetails),
		PlanFingerprint: b.plan.Fingerprint,
		Gender:          ClassifyGender(stats.ByGender),
		Streams:         b.SortStreams(stats.ByStream),
		LastUpdated:     stats.LastUpdated,
		DataSource:      stats.DataSource,
	}
}

// SplitByPayment sums programDetails per program, separately for budget
// and paid cells, in first-occurrence order.
func SplitByPayment(details []v1.ProgramDetail) (budget, paid []v1.CountEntry) {
	budgetSums := newSums()
	paidSums := newSums()
	for _, d := range details {
		switch d.PaymentType {
		case flagBudget:
			budgetSums.add(d.Program, d.Count)
		case flagPaid:
			paidSums.add(d.Program, d.Count)
		}
	}
	return budgetSums.entries(), paidSums.entries()
}

// LevelTotals sums programDetails per level in first-occurrence order.
func LevelTotals(details []v1.ProgramDetail) []v1.CountEntry {
	sums := newSums()
	for _, d := range details {
		sums.add(d.Level, d.Count)
	}
	return sums.entries()
}

// CountApplications sums programDetails matching level and the optional
// program, studyForm and payment filters. payment uses the plan's
// vocabulary (PaymentBudget, PaymentPaid).
func CountApplications(details []v1.ProgramDetail, level, program, studyForm, payment string) int {
	total := 0
	for _, d := range details {
		if d.Level != level {
			continue
		}
		if program != "" && d.Program != program {
			continue
		}
		if studyForm != "" && d.StudyForm != studyForm {
			continue
		}
		if payment != "" && !paymentMatches(payment, d.PaymentType) {
			continue
		}
		total += d.Count
	}
	return total
}

func paymentMatches(payment, flag string) bool {
	return (payment == PaymentBudget && flag == flagBudget) ||
		(payment == PaymentPaid && flag == flagPaid)
}

// CompetitionRatio is applications per seat with one decimal place, or
// NoSeats when seats is zero.
func CompetitionRatio(applications, seats int) string {
	if seats == 0 {
		return NoSeats
	}
	return decimal.NewFromInt(int64(applications)).
		Div(decimal.NewFromInt(int64(seats))).
		StringFixed(1)
}

func (b *Builder) planRows(details []v1.ProgramDetail) []PlanRow {
	rows := make([]PlanRow, 0, len(b.plan.Entries))
	for _, e := range b.plan.Entries {
		apps := CountApplications(details, e.Level, e.Program, e.StudyForm, e.Payment)
		rows = append(rows, PlanRow{
			PlanEntry:    e,
			Applications: apps,
			Ratio:        CompetitionRatio(apps, e.Seats),
		})
	}
	return rows
}

// ClassifyGender buckets byGender entries by their lower-cased name.
// Female markers are checked first because "female" also contains "m".
func ClassifyGender(entries []v1.CountEntry) GenderSplit {
	lower := cases.Lower(language.Russian)

	var split GenderSplit
	for _, e := range entries {
		name := lower.String(e.Name)
		switch {
		case strings.Contains(name, "жен") || strings.Contains(name, "f"):
			split.Female += e.Count
		case strings.Contains(name, "муж") || strings.Contains(name, "m"):
			split.Male += e.Count
		}
	}
	split.Total = split.Male + split.Female
	return split
}

// SortStreams returns byStream in the configured chronological order.
// Streams missing from the order keep their relative order after the known ones.
func (b *Builder) SortStreams(streams []v1.CountEntry) []v1.CountEntry {
	out := make([]v1.CountEntry, len(streams))
	copy(out, streams)

	rank := func(name string) int {
		if i, ok := b.streamOrder[name]; ok {
			return i
		}
		return len(b.streamOrder)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Name) < rank(out[j].Name)
	})
	return out
}

// sums accumulates counts per key in first-occurrence order.
type sums struct {
	index map[string]int
	out   []v1.CountEntry
}

func newSums() *sums {
	return &sums{index: make(map[string]int), out: make([]v1.CountEntry, 0)}
}

func (s *sums) add(key string, n int) {
	if i, ok := s.index[key]; ok {
		s.out[i].Count += n
		return
	}
	s.index[key] = len(s.out)
	s.out = append(s.out, v1.CountEntry{Name: key, Count: n})
}

func (s *sums) entries() []v1.CountEntry {
	return s.out
}
