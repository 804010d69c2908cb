package domain

import "testing"

func TestStudent_Recalculate_NoScores(t *testing.T) {
	s := &Student{Username: "alice", Name: "Alice"}
	s.Recalculate()

	if s.AverageScore != 0.0 {
		t.Errorf("expected average 0.0, got %v", s.AverageScore)
	}
	if s.Grade != GradeNone {
		t.Errorf("expected grade %q, got %q", GradeNone, s.Grade)
	}
}

func TestStudent_Recalculate_Rounding(t *testing.T) {
	s := &Student{
		Username:      "bob",
		SubjectScores: map[string]float64{"math": 85, "physics": 90, "history": 71},
	}
	s.Recalculate()

	// (85+90+71)/3 = 82.0 exactly; (85+90+72)/3 = 82.333... rounds to 82.33
	if s.AverageScore != 82.0 {
		t.Errorf("expected average 82.0, got %v", s.AverageScore)
	}

	s.SubjectScores["history"] = 72
	s.Recalculate()
	if s.AverageScore != 82.33 {
		t.Errorf("expected average 82.33, got %v", s.AverageScore)
	}
}

func TestStudent_Recalculate_GradeThresholds(t *testing.T) {
	cases := []struct {
		score     float64
		wantGrade string
	}{
		{95, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{79.5, "C"},
		{70, "C"},
		{65, "D"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
	}

	for _, tc := range cases {
		s := &Student{SubjectScores: map[string]float64{"only": tc.score}}
		s.Recalculate()
		if s.Grade != tc.wantGrade {
			t.Errorf("score=%v: expected grade %q, got %q", tc.score, tc.wantGrade, s.Grade)
		}
	}
}
