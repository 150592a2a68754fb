package stats

import (
	"time"

	"github.com/inkwise/writertools/internal/models"
)

// Stats summarizes the sessions inside one date window. WordCount and
// DurationSeconds are nil, not zero, when no session in the window recorded
// the field, so templates can show "no data" instead of a misleading 0.
type Stats struct {
	Sessions        int
	WordCount       *int
	DurationSeconds *int64
}

// Summary holds per-user statistics for the three standard trailing windows.
// All three windows exclude the current day: today's numbers keep moving while
// you work, and the summary is meant to be a settled record.
type Summary struct {
	SevenDay  Stats
	ThirtyDay Stats
	All       Stats
}

// nullableSum accumulates optional values, tracking separately whether any
// value was present at all. A sum that silently starts at zero cannot tell
// "no data" apart from "zero words".
type nullableSum struct {
	total int64
	seen  bool
}

func (s *nullableSum) add(v int64) {
	s.total += v
	s.seen = true
}

func (s *nullableSum) intResult() *int {
	if !s.seen {
		return nil
	}
	n := int(s.total)
	return &n
}

func (s *nullableSum) int64Result() *int64 {
	if !s.seen {
		return nil
	}
	n := s.total
	return &n
}

// window is a half-open date range [start, end). A nil start means unbounded.
type window struct {
	start *time.Time
	end   time.Time
}

func (w window) contains(date time.Time) bool {
	if !date.Before(w.end) {
		return false
	}
	return w.start == nil || !date.Before(*w.start)
}

// collect computes the stats for the sessions whose start date falls inside w.
// Sessions are filtered on start date only: end date is optional, so it is not
// a safe field to bucket on.
func collect(sessions []models.WorkSession, w window) Stats {
	var (
		count     int
		words     nullableSum
		durations nullableSum
	)
	for i := range sessions {
		ws := &sessions[i]
		if !w.contains(models.DateOf(ws.StartDate)) {
			continue
		}
		count++
		if ws.WordCount != nil {
			words.add(int64(*ws.WordCount))
		}
		if ws.DurationSeconds != nil {
			durations.add(*ws.DurationSeconds)
		}
	}
	return Stats{
		Sessions:        count,
		WordCount:       words.intResult(),
		DurationSeconds: durations.int64Result(),
	}
}

// Summarize computes session count, total word count, and total duration for
// the past 7 days, past 30 days, and all time, relative to today. Every window
// is half-open and ends at (excludes) today.
func Summarize(sessions []models.WorkSession, today time.Time) Summary {
	today = models.DateOf(today)
	sevenDaysAgo := today.AddDate(0, 0, -7)
	thirtyDaysAgo := today.AddDate(0, 0, -30)

	return Summary{
		SevenDay:  collect(sessions, window{start: &sevenDaysAgo, end: today}),
		ThirtyDay: collect(sessions, window{start: &thirtyDaysAgo, end: today}),
		All:       collect(sessions, window{end: today}),
	}
}

// SummarizeRange computes the same statistics for one caller-supplied
// half-open range [start, end), again bucketing on start date only.
func SummarizeRange(sessions []models.WorkSession, start, end time.Time) Stats {
	s := models.DateOf(start)
	return collect(sessions, window{start: &s, end: models.DateOf(end)})
}

// Context flattens a summary into the exact key set the stats templates
// expect. Durations are whole seconds; absent values stay nil so templates
// render them as "no data".
func (s Summary) Context() map[string]any {
	ctx := make(map[string]any, 9)
	put := func(prefix string, st Stats) {
		ctx[prefix+"_sessions"] = st.Sessions
		if st.WordCount != nil {
			ctx[prefix+"_wordcount"] = *st.WordCount
		} else {
			ctx[prefix+"_wordcount"] = nil
		}
		if st.DurationSeconds != nil {
			ctx[prefix+"_duration"] = *st.DurationSeconds
		} else {
			ctx[prefix+"_duration"] = nil
		}
	}
	put("sevenday", s.SevenDay)
	put("thirtyday", s.ThirtyDay)
	put("all", s.All)
	return ctx
}
