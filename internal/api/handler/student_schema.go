package handler

// gradeUpdateRequest merges new subject scores into a student's record.
type gradeUpdateRequest struct {
	SubjectScores map[string]float64 `json:"subject_scores" validate:"required,dive,gte=0,lte=100"`
}

// studentUpdateRequest replaces a student's profile fields wholesale.
type studentUpdateRequest struct {
	Name          string             `json:"name"           validate:"required"`
	SubjectScores map[string]float64 `json:"subject_scores" validate:"required,dive,gte=0,lte=100"`
}
