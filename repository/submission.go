// Package repository holds the typed, per-track submission repositories. The
// two submission tables are near-identical; instead of interpolating table
// names into SQL, each track gets its own repository behind a shared
// interface covering the review workflow and the public status lookup.
package repository

import (
	"errors"
	"time"

	"srif-api/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a submission id does not resolve.
var ErrNotFound = errors.New("submission not found")

// ReviewUpdate carries the fields the review workflow may change.
type ReviewUpdate struct {
	Status           string
	ReviewerNotes    *string
	PresentationType *string
	ReviewerID       int
	ReviewerIP       *string
}

// SubmissionRepo is the track-independent surface of a submission table.
type SubmissionRepo interface {
	Track() models.Track
	// Snapshot loads the pre-update view of a submission by numeric id.
	Snapshot(id int) (*models.SubmissionSnapshot, error)
	// StatusByCode resolves a public submission id (R2026-####) to its status.
	StatusByCode(code string) (*models.SubmissionStatus, error)
	// ApplyReview updates the review fields and appends the audit row in one
	// transaction. The caller validates the status beforehand.
	ApplyReview(id int, upd ReviewUpdate) error
	// Count returns total rows, optionally restricted to a status.
	Count(status string) (int64, error)
}

// ForTrack returns the repository for the given track.
func ForTrack(db *gorm.DB, t models.Track) SubmissionRepo {
	if t == models.TrackInnovation {
		return &innovationRepo{db: db}
	}
	return &researchRepo{db: db}
}

type researchRepo struct {
	db *gorm.DB
}

func (r *researchRepo) Track() models.Track {
	return models.TrackResearch
}

func (r *researchRepo) Snapshot(id int) (*models.SubmissionSnapshot, error) {
	var s models.ResearchSubmission
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	snap := s.Snapshot()
	return &snap, nil
}

func (r *researchRepo) StatusByCode(code string) (*models.SubmissionStatus, error) {
	var s models.ResearchSubmission
	if err := r.db.Select("submission_id", "status", "created_at").
		First(&s, "submission_id = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &models.SubmissionStatus{
		SubmissionID: s.SubmissionID,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}, nil
}

func (r *researchRepo) ApplyReview(id int, upd ReviewUpdate) error {
	return applyReview(r.db, models.TrackResearch, &models.ResearchSubmission{ID: id}, id, upd)
}

func (r *researchRepo) Count(status string) (int64, error) {
	q := r.db.Model(&models.ResearchSubmission{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

type innovationRepo struct {
	db *gorm.DB
}

func (r *innovationRepo) Track() models.Track {
	return models.TrackInnovation
}

func (r *innovationRepo) Snapshot(id int) (*models.SubmissionSnapshot, error) {
	var s models.InnovationSubmission
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	snap := s.Snapshot()
	return &snap, nil
}

func (r *innovationRepo) StatusByCode(code string) (*models.SubmissionStatus, error) {
	var s models.InnovationSubmission
	if err := r.db.Select("submission_id", "status", "created_at").
		First(&s, "submission_id = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &models.SubmissionStatus{
		SubmissionID: s.SubmissionID,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}, nil
}

func (r *innovationRepo) ApplyReview(id int, upd ReviewUpdate) error {
	return applyReview(r.db, models.TrackInnovation, &models.InnovationSubmission{ID: id}, id, upd)
}

func (r *innovationRepo) Count(status string) (int64, error) {
	q := r.db.Model(&models.InnovationSubmission{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// applyReview runs the status update and the activity-log insert in one
// transaction, so an audit row always matches a committed update.
func applyReview(db *gorm.DB, track models.Track, model any, id int, upd ReviewUpdate) error {
	now := time.Now()
	entityType := string(track)

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(model).Updates(map[string]any{
			"status":            upd.Status,
			"reviewer_notes":    upd.ReviewerNotes,
			"presentation_type": upd.PresentationType,
			"reviewed_by":       upd.ReviewerID,
			"reviewed_at":       now,
			"updated_at":        now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		logRow := models.ActivityLog{
			UserID:     upd.ReviewerID,
			Action:     "update_status",
			EntityType: &entityType,
			EntityID:   &id,
			Details: models.MarshalDetails(map[string]any{
				"status":        upd.Status,
				"reviewerNotes": upd.ReviewerNotes,
			}),
			IPAddress: upd.ReviewerIP,
			CreatedAt: now,
		}
		return tx.Create(&logRow).Error
	})
}
