package domain

import (
	"errors"
	"math"
)

// GradeNone is reported while a student has no recorded scores.
const GradeNone = "N/A"

var ErrStudentNotFound = errors.New("student not found")

// Student is a portal profile with per-subject scores and a derived grade.
type Student struct {
	Username      string             `json:"username"`
	Name          string             `json:"name"`
	SubjectScores map[string]float64 `json:"subject_scores"`
	AverageScore  float64            `json:"average"`
	Grade         string             `json:"grade"`
}

// Recalculate refreshes AverageScore and Grade from the current scores.
// The average is rounded to two decimals before the letter is assigned.
func (s *Student) Recalculate() {
	if len(s.SubjectScores) == 0 {
		s.AverageScore = 0.0
		s.Grade = GradeNone
		return
	}

	var sum float64
	for _, score := range s.SubjectScores {
		sum += score
	}
	s.AverageScore = math.Round(sum/float64(len(s.SubjectScores))*100) / 100
	s.Grade = letterGrade(s.AverageScore)
}

func letterGrade(average float64) string {
	switch {
	case average >= 90:
		return "A"
	case average >= 80:
		return "B"
	case average >= 70:
		return "C"
	case average >= 60:
		return "D"
	default:
		return "F"
	}
}
