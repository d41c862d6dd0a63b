package score

// Grade is the letter classification derived from a calibrated planet score.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grade thresholds. A score at or above a threshold earns the grade.
const (
	ThresholdS = 90.0
	ThresholdA = 80.0
	ThresholdB = 65.0
	ThresholdC = 50.0
	ThresholdD = 35.0
)

// GradeFromScore maps a calibrated 0-100 score to its letter grade.
func GradeFromScore(s float64) Grade {
	switch {
	case s >= ThresholdS:
		return GradeS
	case s >= ThresholdA:
		return GradeA
	case s >= ThresholdB:
		return GradeB
	case s >= ThresholdC:
		return GradeC
	case s >= ThresholdD:
		return GradeD
	default:
		return GradeF
	}
}

// IsValid reports whether the grade is one of the six letters.
func (g Grade) IsValid() bool {
	switch g {
	case GradeS, GradeA, GradeB, GradeC, GradeD, GradeF:
		return true
	}
	return false
}
