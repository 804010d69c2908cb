package domain

// JobApplication is a single tracked application, stored per user.
type JobApplication struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	DateApplied string `json:"date_applied"`
	Status      string `json:"status"`
}
