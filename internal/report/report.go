// Package report prints learner summaries as console tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/abhisek/learnlens/internal/aggregate"
	"github.com/abhisek/learnlens/internal/risk"
)

// Unassessed labels learners missing an average needed for a risk score.
const Unassessed = "n/a"

var concernColors = map[risk.Concern]*color.Color{
	risk.ConcernAcademic:        color.New(color.FgRed, color.Bold),
	risk.ConcernAttendance:      color.New(color.FgYellow),
	risk.ConcernLearningSupport: color.New(color.FgCyan),
	risk.ConcernOnTrack:         color.New(color.FgBlue),
}

// Sorted returns a copy of learners ordered by concern priority, then ID.
// Unassessed learners sort last.
func Sorted(learners []aggregate.Summary) []aggregate.Summary {
	out := make([]aggregate.Summary, len(learners))
	copy(out, learners)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priority(out[i]), priority(out[j])
		if pi != pj {
			return pi < pj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func priority(s aggregate.Summary) int {
	if s.Risk == nil {
		return len(risk.AllConcerns())
	}
	return s.Risk.Concern.Priority()
}

// Counts tallies learners per concern. Unassessed learners are counted
// under the empty concern.
func Counts(learners []aggregate.Summary) map[risk.Concern]int {
	counts := make(map[risk.Concern]int)
	for _, l := range learners {
		if l.Risk == nil {
			counts[""]++
			continue
		}
		counts[l.Risk.Concern]++
	}
	return counts
}

// Write renders the learner table followed by the concern distribution.
func Write(w io.Writer, learners []aggregate.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Learner", "Grade", "Barrier", "Avg Mark", "Avg Attendance", "Concern", "Radius"})
	table.SetAutoWrapText(false)

	for _, l := range Sorted(learners) {
		mark, okMark := l.AvgMark()
		att, okAtt := l.AvgAttendance()
		row := []string{
			l.ID,
			orDash(l.Grade),
			yesNo(l.HasBarrier),
			number(mark, okMark),
			number(att, okAtt),
			Unassessed,
			Unassessed,
		}
		if l.Risk != nil {
			row[5] = concernLabel(l.Risk.Concern)
			row[6] = strconv.FormatFloat(l.Risk.Radius, 'f', 0, 64)
		}
		table.Append(row)
	}
	table.Render()

	counts := Counts(learners)
	fmt.Fprintln(w)
	dist := tablewriter.NewWriter(w)
	dist.SetHeader([]string{"Concern", "Learners"})
	for _, c := range risk.AllConcerns() {
		dist.Append([]string{concernLabel(c), strconv.Itoa(counts[c])})
	}
	if n := counts[""]; n > 0 {
		dist.Append([]string{Unassessed, strconv.Itoa(n)})
	}
	dist.SetFooter([]string{"Total", strconv.Itoa(len(learners))})
	dist.Render()
}

func concernLabel(c risk.Concern) string {
	if col, ok := concernColors[c]; ok {
		return col.Sprint(string(c))
	}
	return string(c)
}

func number(v float64, ok bool) string {
	if !ok {
		return Unassessed
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
