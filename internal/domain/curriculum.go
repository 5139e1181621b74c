package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is the root node of a curriculum tree.
type Course struct {
	ID        uuid.UUID
	Title     string
	Version   int
	UpdatedAt time.Time
}

// Phase is an ordered section of a course.
type Phase struct {
	ID       uuid.UUID
	CourseID uuid.UUID
	Title    string
	Position int
	Weeks    []Week
}

// Week is an ordered section of a phase.
type Week struct {
	ID       uuid.UUID
	PhaseID  uuid.UUID
	Title    string
	Position int
	Topics   []Topic
}

// Topic is the leaf of the curriculum. Its ID is assigned once and never reused.
type Topic struct {
	ID       uuid.UUID
	WeekID   uuid.UUID
	Title    string
	Position int
}

// Curriculum is a point-in-time snapshot of Course -> Phase[] -> Week[] -> Topic[].
// Two reads of the same course may return different shapes.
type Curriculum struct {
	Course Course
	Phases []Phase
}

// TotalTopics sums topic counts over every phase and week.
func (c *Curriculum) TotalTopics() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, p := range c.Phases {
		for _, w := range p.Weeks {
			n += len(w.Topics)
		}
	}
	return n
}

// TopicIDs returns the set of topic identifiers in this snapshot.
func (c *Curriculum) TopicIDs() TopicSet {
	s := make(TopicSet, c.TotalTopics())
	if c == nil {
		return s
	}
	for _, p := range c.Phases {
		for _, w := range p.Weeks {
			for _, t := range w.Topics {
				s[t.ID] = struct{}{}
			}
		}
	}
	return s
}

// Topic looks up a topic by id.
func (c *Curriculum) Topic(id uuid.UUID) (Topic, bool) {
	if c == nil {
		return Topic{}, false
	}
	for _, p := range c.Phases {
		for _, w := range p.Weeks {
			for _, t := range w.Topics {
				if t.ID == id {
					return t, true
				}
			}
		}
	}
	return Topic{}, false
}

// HasTopic reports whether id belongs to this snapshot.
func (c *Curriculum) HasTopic(id uuid.UUID) bool {
	_, ok := c.Topic(id)
	return ok
}
