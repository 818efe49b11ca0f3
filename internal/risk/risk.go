package risk

import "fmt"

// Concern is the single highest-priority risk category shown for a learner.
type Concern string

const (
	ConcernAcademic        Concern = "Academic"
	ConcernAttendance      Concern = "Attendance"
	ConcernLearningSupport Concern = "Learning Support"
	ConcernOnTrack         Concern = "On Track"
)

// AllConcerns lists concerns in priority order.
func AllConcerns() []Concern {
	return []Concern{ConcernAcademic, ConcernAttendance, ConcernLearningSupport, ConcernOnTrack}
}

// Priority returns the concern's rank, 0 being the most urgent.
func (c Concern) Priority() int {
	switch c {
	case ConcernAcademic:
		return 0
	case ConcernAttendance:
		return 1
	case ConcernLearningSupport:
		return 2
	case ConcernOnTrack:
		return 3
	default:
		return 4
	}
}

// Color returns the branded hex color used to draw the concern.
func (c Concern) Color() string {
	switch c {
	case ConcernAcademic:
		return "#C14444"
	case ConcernAttendance:
		return "#E97451"
	case ConcernLearningSupport:
		return "#00A99D"
	default:
		return "#003865"
	}
}

// Legend returns the label used in chart legends.
func (c Concern) Legend() string {
	switch c {
	case ConcernAcademic:
		return "Academic Concern"
	case ConcernAttendance:
		return "Attendance Concern"
	case ConcernLearningSupport:
		return "Learning Support Flag"
	default:
		return string(c)
	}
}

const (
	// SevereScore is the weight for a metric below its severe threshold.
	SevereScore = 3
	// WatchScore is the weight for a metric below its watch threshold.
	WatchScore = 1
	// BarrierScore is the weight for a flagged learning barrier.
	BarrierScore = 2

	BaseRadius = 10
	RadiusStep = 3
)

// Thresholds are the percentage cut-offs for the academic and attendance
// risk scores. A value strictly below Severe scores SevereScore, strictly
// below Watch scores WatchScore.
type Thresholds struct {
	AcademicSevere   float64
	AcademicWatch    float64
	AttendanceSevere float64
	AttendanceWatch  float64
}

// DefaultThresholds returns the cut-offs used by the risk bubble chart.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AcademicSevere:   50,
		AcademicWatch:    65,
		AttendanceSevere: 85,
		AttendanceWatch:  90,
	}
}

// Validate checks that each severe cut-off does not exceed its watch cut-off.
func (t Thresholds) Validate() error {
	if t.AcademicSevere > t.AcademicWatch {
		return fmt.Errorf("academic severe threshold %.1f above watch threshold %.1f", t.AcademicSevere, t.AcademicWatch)
	}
	if t.AttendanceSevere > t.AttendanceWatch {
		return fmt.Errorf("attendance severe threshold %.1f above watch threshold %.1f", t.AttendanceSevere, t.AttendanceWatch)
	}
	return nil
}

// Scores holds the three independent risk weights.
type Scores struct {
	Academic   int `json:"academic"`
	Attendance int `json:"attendance"`
	Barrier    int `json:"barrier"`
}

// Total is the sum of all weights.
func (s Scores) Total() int {
	return s.Academic + s.Attendance + s.Barrier
}

// Assessment is the derived risk view of one learner.
type Assessment struct {
	Scores  Scores  `json:"scores"`
	Concern Concern `json:"primary_concern"`
	Radius  float64 `json:"radius"`
}

// Assess scores a learner's averages and classifies the primary concern.
func Assess(avgMark, avgAttendance float64, hasBarrier bool, t Thresholds) Assessment {
	s := Scores{
		Academic:   tier(avgMark, t.AcademicSevere, t.AcademicWatch),
		Attendance: tier(avgAttendance, t.AttendanceSevere, t.AttendanceWatch),
	}
	if hasBarrier {
		s.Barrier = BarrierScore
	}
	return Assessment{
		Scores:  s,
		Concern: Classify(s, hasBarrier),
		Radius:  Radius(s),
	}
}

// Classify picks the primary concern. Academic wins a tie with attendance
// as long as the academic score is non-zero.
func Classify(s Scores, hasBarrier bool) Concern {
	switch {
	case s.Academic >= s.Attendance && s.Academic > 0:
		return ConcernAcademic
	case s.Attendance > s.Academic:
		return ConcernAttendance
	case hasBarrier:
		return ConcernLearningSupport
	default:
		return ConcernOnTrack
	}
}

// Radius is the display radius of a learner's bubble.
func Radius(s Scores) float64 {
	return float64(BaseRadius + RadiusStep*s.Total())
}

func tier(v, severe, watch float64) int {
	switch {
	case v < severe:
		return SevereScore
	case v < watch:
		return WatchScore
	default:
		return 0
	}
}
