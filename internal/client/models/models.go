// Package models holds the wire and state types the ScanMark client works
// with. JSON tags follow the backend's field names; records are Mongo
// documents on the server side, so identifiers arrive as "_id" strings.
package models

import "time"

// Roles known to the backend.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User is the current-user record returned by the login endpoint and
// persisted locally for the lifetime of the session.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Session couples the opaque bearer token with the user it belongs to.
type Session struct {
	Token string
	User  User
}

// RegisterInput carries the fields of a registration request.
// Validation tags are enforced client-side before any call is made.
type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=teacher student"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// RubricCriterion is one scored criterion of a rubric.
type RubricCriterion struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Points      float64 `json:"points"`
}

// Rubric is a grading schema record.
type Rubric struct {
	ID           string            `json:"_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Subject      string            `json:"subject"`
	QuestionType string            `json:"question_type"`
	TotalPoints  float64           `json:"total_points"`
	Criteria     []RubricCriterion `json:"criteria,omitempty"`
	CreatedBy    string            `json:"created_by,omitempty"`
	IsPublic     bool              `json:"is_public,omitempty"`
	CreatedAt    time.Time         `json:"created_at,omitempty"`
}

// PlagiarismResult is the verdict of the external detection service,
// consumed but never computed here.
type PlagiarismResult struct {
	IsPlagiarized          bool    `json:"is_plagiarized"`
	ConfidenceScore        float64 `json:"confidence_score,omitempty"`
	AIGeneratedProbability float64 `json:"ai_generated_probability,omitempty"`
	SimilarityPercentage   float64 `json:"similarity_percentage,omitempty"`
	DetectionMethod        string  `json:"detection_method,omitempty"`
}

// Evaluation is one graded submission. A missing percentage field
// deserializes to 0, which is exactly how the dashboard treats it.
type Evaluation struct {
	ID               string           `json:"_id"`
	SubmissionID     string           `json:"submission_id"`
	RubricID         string           `json:"rubric_id"`
	StudentID        string           `json:"student_id"`
	Subject          string           `json:"subject,omitempty"`
	Feedback         string           `json:"feedback,omitempty"`
	TotalScore       float64          `json:"total_score"`
	MaxPossibleScore float64          `json:"max_possible_score"`
	Percentage       float64          `json:"percentage"`
	NeedsReview      bool             `json:"needs_review"`
	PlagiarismResult PlagiarismResult `json:"plagiarism_result"`
	CreatedAt        time.Time        `json:"created_at,omitempty"`
}

// Submission is an uploaded answer sheet record.
type Submission struct {
	ID               string    `json:"_id"`
	StudentID        string    `json:"student_id"`
	OriginalFilename string    `json:"original_filename"`
	AssignmentID     string    `json:"assignment_id,omitempty"`
	Question         string    `json:"question,omitempty"`
	FileSize         int64     `json:"file_size"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// UploadResult is the backend's acknowledgement of an upload.
type UploadResult struct {
	SubmissionID string `json:"submission_id"`
	Message      string `json:"message"`
}

// EvaluateResult is the backend's response to an evaluation request.
type EvaluateResult struct {
	EvaluationID     string           `json:"evaluation_id"`
	PlagiarismResult PlagiarismResult `json:"plagiarism_result"`
	Message          string           `json:"message"`
}

// Health is the health-check payload: an overall status plus a mapping of
// sub-service name to status string.
type Health struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// StudentAnalytics is the per-student analytics payload.
type StudentAnalytics struct {
	StudentID            string             `json:"student_id"`
	TotalEvaluations     int                `json:"total_evaluations"`
	AverageScore         float64            `json:"average_score"`
	HighestScore         float64            `json:"highest_score"`
	LowestScore          float64            `json:"lowest_score"`
	RecentTrend          []float64          `json:"recent_trend"`
	PerformanceBySubject map[string]Subject `json:"performance_by_subject"`
	NeedsReviewCount     int                `json:"needs_review_count"`
	PlagiarismIncidents  int                `json:"plagiarism_incidents"`
}

// Subject is one entry of the per-subject performance breakdown.
type Subject struct {
	TotalEvaluations int     `json:"total_evaluations"`
	AverageScore     float64 `json:"average_score"`
}

// ClassAnalytics is the class-wide analytics payload.
type ClassAnalytics struct {
	TotalEvaluations  int     `json:"total_evaluations"`
	AverageScore      float64 `json:"average_score"`
	MaxScore          float64 `json:"max_score"`
	MinScore          float64 `json:"min_score"`
	AveragePercentage float64 `json:"average_percentage"`
}
