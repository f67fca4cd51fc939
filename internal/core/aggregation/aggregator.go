package aggregation

import (
	"time"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
)

// Aggregate reduces applications into grouped counts and the program
// cross-tabulation in a single pass. Breakdown entries follow the order in
// which each value first appears in apps; empty values are skipped.
// LastUpdated is stamped with now; DataSource is left to the caller.
func Aggregate(apps []v1.Application, now time.Time) v1.Stats {
	counters := make([]*orderedCounter[string], len(Dimensions))
	for i := range counters {
		counters[i] = newOrderedCounter[string]()
	}
	programs := newOrderedCounter[string]()
	programLevel := make(map[string]string)
	details := newOrderedCounter[DetailKey]()

	for i := range apps {
		app := &apps[i]

		for d, dim := range Dimensions {
			if v := dim.Value(app); v != "" {
				counters[d].Add(v)
			}
		}

		// The level published for a program is the one on its first record.
		if app.Program != "" && programs.Add(app.Program) {
			programLevel[app.Program] = app.Level
		}

		if app.HasProgramDetail() {
			details.Add(DetailKey{
				Level:       app.Level,
				Program:     app.Program,
				StudyForm:   app.StudyForm,
				PaymentType: app.PaymentType,
			})
		}
	}

	stats := v1.Stats{
		TotalApplications: len(apps),
		LastUpdated:       now.UTC().Format(v1.TimestampLayout),
	}

	for d, dim := range Dimensions {
		dim.Assign(&stats, toCountEntries(counters[d]))
	}

	stats.ByProgram = make([]v1.ProgramEntry, 0, programs.Len())
	programs.Each(func(name string, count int) {
		stats.ByProgram = append(stats.ByProgram, v1.ProgramEntry{
			Name:  name,
			Count: count,
			Level: programLevel[name],
		})
	})

	stats.ProgramDetails = make([]v1.ProgramDetail, 0, details.Len())
	details.Each(func(key DetailKey, count int) {
		stats.ProgramDetails = append(stats.ProgramDetails, v1.ProgramDetail{
			Program:     key.Program,
			Level:       key.Level,
			StudyForm:   key.StudyForm,
			PaymentType: key.PaymentType,
			Count:       count,
		})
	})

	return stats
}

func toCountEntries(c *orderedCounter[string]) []v1.CountEntry {
	entries := make([]v1.CountEntry, 0, c.Len())
	c.Each(func(name string, count int) {
		entries = append(entries, v1.CountEntry{Name: name, Count: count})
	})
	return entries
}
