package models

import (
	"fmt"
	"strings"
	"time"
)

// Submission statuses. A submission is created as pending and only moves via
// the admin review workflow.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusRevision = "revision"
)

// ValidStatus reports whether s is one of the four review statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRevision:
		return true
	}
	return false
}

// Track selects between the two submission tables. Each track has its own
// typed model and repository; table names are never assembled from strings.
type Track string

const (
	TrackResearch   Track = "research"
	TrackInnovation Track = "innovation"
)

// ParseTrack converts a route parameter into a Track.
func ParseTrack(s string) (Track, error) {
	switch Track(strings.ToLower(s)) {
	case TrackResearch:
		return TrackResearch, nil
	case TrackInnovation:
		return TrackInnovation, nil
	}
	return "", fmt.Errorf("unknown track %q", s)
}

// TrackForSubmissionID infers the track from a public submission id
// (R2026-#### or I2026-####).
func TrackForSubmissionID(id string) Track {
	if strings.HasPrefix(id, "I") {
		return TrackInnovation
	}
	return TrackResearch
}

// Prefix returns the submission-id prefix letter for the track.
func (t Track) Prefix() string {
	if t == TrackInnovation {
		return "I"
	}
	return "R"
}

type Affiliation struct {
	ID         int    `gorm:"primaryKey;column:id" json:"id"`
	Code       string `gorm:"column:code;size:50;unique" json:"code"`
	NameEn     string `gorm:"column:name_en;size:255" json:"name_en"`
	NameAr     string `gorm:"column:name_ar;size:255" json:"name_ar"`
	IsExternal bool   `gorm:"column:is_external;default:false" json:"is_external"`
}

func (Affiliation) TableName() string {
	return "affiliations"
}

// ResearchSubmission represents the research_submissions table.
type ResearchSubmission struct {
	ID                  int        `gorm:"primaryKey;column:id" json:"id"`
	SubmissionID        string     `gorm:"column:submission_id;size:20;unique" json:"submission_id"`
	AuthorName          string     `gorm:"column:author_name;size:255" json:"author_name"`
	SupervisorName      string     `gorm:"column:supervisor_name;size:255" json:"supervisor_name"`
	TeamMembers         *string    `gorm:"column:team_members;type:text" json:"team_members,omitempty"`
	Email               string     `gorm:"column:email;size:255;index" json:"email"`
	AffiliationID       int        `gorm:"column:affiliation_id" json:"affiliation_id"`
	ExternalInstitution *string    `gorm:"column:external_institution;size:255" json:"external_institution,omitempty"`
	Title               string     `gorm:"column:title;size:500" json:"title"`
	Background          string     `gorm:"column:background;type:text" json:"background"`
	Methods             string     `gorm:"column:methods;type:text" json:"methods"`
	Results             string     `gorm:"column:results;type:text" json:"results"`
	Conclusion          string     `gorm:"column:conclusion;type:text" json:"conclusion"`
	FilePath            *string    `gorm:"column:file_path;size:500" json:"file_path,omitempty"`
	FileName            *string    `gorm:"column:file_name;size:255" json:"file_name,omitempty"`
	Status              string     `gorm:"column:status;size:50;default:pending;index" json:"status"`
	ReviewerNotes       *string    `gorm:"column:reviewer_notes;type:text" json:"reviewer_notes,omitempty"`
	ReviewedBy          *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	PresentationType    *string    `gorm:"column:presentation_type;size:50" json:"presentation_type,omitempty"`
	CreatedAt           time.Time  `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at" json:"updated_at"`

	Affiliation Affiliation `gorm:"foreignKey:AffiliationID" json:"affiliation,omitempty"`
	Reviewer    *User       `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

// InnovationSubmission represents the innovation_submissions table.
type InnovationSubmission struct {
	ID                    int        `gorm:"primaryKey;column:id" json:"id"`
	SubmissionID          string     `gorm:"column:submission_id;size:20;unique" json:"submission_id"`
	InnovatorName         string     `gorm:"column:innovator_name;size:255" json:"innovator_name"`
	MentorName            string     `gorm:"column:mentor_name;size:255" json:"mentor_name"`
	TeamMembers           *string    `gorm:"column:team_members;type:text" json:"team_members,omitempty"`
	Email                 string     `gorm:"column:email;size:255;index" json:"email"`
	AffiliationID         int        `gorm:"column:affiliation_id" json:"affiliation_id"`
	ExternalInstitution   *string    `gorm:"column:external_institution;size:255" json:"external_institution,omitempty"`
	Title                 string     `gorm:"column:title;size:500" json:"title"`
	ProblemStatement      string     `gorm:"column:problem_statement;type:text" json:"problem_statement"`
	InnovationDescription string     `gorm:"column:innovation_description;type:text" json:"innovation_description"`
	KeyFeatures           string     `gorm:"column:key_features;type:text" json:"key_features"`
	Implementation        string     `gorm:"column:implementation;type:text" json:"implementation"`
	FilePath              *string    `gorm:"column:file_path;size:500" json:"file_path,omitempty"`
	FileName              *string    `gorm:"column:file_name;size:255" json:"file_name,omitempty"`
	Status                string     `gorm:"column:status;size:50;default:pending;index" json:"status"`
	ReviewerNotes         *string    `gorm:"column:reviewer_notes;type:text" json:"reviewer_notes,omitempty"`
	ReviewedBy            *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt            *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	PresentationType      *string    `gorm:"column:presentation_type;size:50" json:"presentation_type,omitempty"`
	CreatedAt             time.Time  `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"column:updated_at" json:"updated_at"`

	Affiliation Affiliation `gorm:"foreignKey:AffiliationID" json:"affiliation,omitempty"`
	Reviewer    *User       `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

func (ResearchSubmission) TableName() string {
	return "research_submissions"
}

func (InnovationSubmission) TableName() string {
	return "innovation_submissions"
}

// SubmissionSnapshot is the track-independent view of a submission used by the
// review workflow and the notification sender.
type SubmissionSnapshot struct {
	ID           int
	SubmissionID string
	AuthorName   string
	Email        string
	Title        string
	Status       string
}

func (s *ResearchSubmission) Snapshot() SubmissionSnapshot {
	return SubmissionSnapshot{
		ID:           s.ID,
		SubmissionID: s.SubmissionID,
		AuthorName:   s.AuthorName,
		Email:        s.Email,
		Title:        s.Title,
		Status:       s.Status,
	}
}

func (s *InnovationSubmission) Snapshot() SubmissionSnapshot {
	return SubmissionSnapshot{
		ID:           s.ID,
		SubmissionID: s.SubmissionID,
		AuthorName:   s.InnovatorName,
		Email:        s.Email,
		Title:        s.Title,
		Status:       s.Status,
	}
}

// SubmissionStatus is the public status-check payload.
type SubmissionStatus struct {
	SubmissionID string    `json:"submission_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
