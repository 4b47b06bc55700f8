package entity

// JobRecommendation is the AI comment for one job on one KST day.
type JobRecommendation struct {
	Date    string `json:"date"`
	JobName string `json:"job_name"`
	Comment string `json:"comment"`
}
