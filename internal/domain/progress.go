package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CertificateThresholdPercent is the completion percentage a learner must reach
// before a certificate can be issued.
const CertificateThresholdPercent = 90

// ProgressRecord is the set of completed topics for one (learner, course) pair.
// It may reference topics that no longer exist in the current curriculum.
type ProgressRecord struct {
	LearnerID         uuid.UUID
	CourseID          uuid.UUID
	CompletedTopicIDs TopicSet
	UpdatedAt         time.Time
}

// NewProgressRecord returns an empty record for the pair.
func NewProgressRecord(learnerID, courseID uuid.UUID) *ProgressRecord {
	return &ProgressRecord{
		LearnerID:         learnerID,
		CourseID:          courseID,
		CompletedTopicIDs: TopicSet{},
	}
}

// CompletionStats is the derived completion of a course for a learner.
type CompletionStats struct {
	CourseID  uuid.UUID
	Completed int
	Total     int
	Percent   int
}

// ComputeCompletion derives completion from a curriculum snapshot and a
// progress record. Completed counts only topics present in the snapshot, so
// topics removed after being completed no longer count. A nil record means no
// progress.
func ComputeCompletion(c *Curriculum, r *ProgressRecord) CompletionStats {
	stats := CompletionStats{Total: c.TotalTopics()}
	if c != nil {
		stats.CourseID = c.Course.ID
	}
	if r != nil {
		if stats.CourseID == uuid.Nil {
			stats.CourseID = r.CourseID
		}
		stats.Completed = c.TopicIDs().IntersectCount(r.CompletedTopicIDs)
	}
	if stats.Total > 0 {
		stats.Percent = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// EligibleAt reports whether the stats clear the given percentage threshold.
// Completed > 0 guards against a pass on empty curricula.
func (s CompletionStats) EligibleAt(thresholdPercent int) bool {
	return s.Total > 0 && s.Completed > 0 && s.Percent >= thresholdPercent
}

// IsCertificateEligible applies CertificateThresholdPercent.
func IsCertificateEligible(s CompletionStats) bool {
	return s.EligibleAt(CertificateThresholdPercent)
}
