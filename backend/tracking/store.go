package tracking

import (
	"context"
	"log"
	"sort"
	"sync"
)

// LessonSet is a set of completed lesson ids within one course.
type LessonSet map[uint]struct{}

func NewLessonSet(ids ...uint) LessonSet {
	s := make(LessonSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s LessonSet) Has(id uint) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the set in ascending order for stable serialization.
func (s LessonSet) IDs() []uint {
	ids := make([]uint, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s LessonSet) clone() LessonSet {
	c := make(LessonSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Persister saves the full completed-lesson set for one (student, course) pair.
type Persister interface {
	SaveProgress(ctx context.Context, studentID, courseID uint, lessonIDs []uint) error
}

type progressKey struct {
	studentID uint
	courseID  uint
}

// Store is the in-memory progress record: (student, course) -> completed
// lesson set. Toggles apply locally first and are persisted best-effort in
// the background; a failed save is logged and the local value stands until
// the next full reload. Writes race by network completion order, not call
// order — there is no version check (see DESIGN.md).
type Store struct {
	mu        sync.Mutex
	records   map[progressKey]LessonSet
	persister Persister
	logger    *log.Logger

	inflight sync.WaitGroup
}

func NewStore(p Persister, logger *log.Logger) *Store {
	return &Store{
		records:   make(map[progressKey]LessonSet),
		persister: p,
		logger:    logger,
	}
}

// Completed returns a copy of the current set for the pair, empty if absent.
func (s *Store) Completed(studentID, courseID uint) LessonSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[progressKey{studentID, courseID}].clone()
}

// Replace seeds the pair from a remote load without triggering a save.
func (s *Store) Replace(studentID, courseID uint, lessonIDs []uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[progressKey{studentID, courseID}] = NewLessonSet(lessonIDs...)
}

// Toggle flips lessonID in the pair's set and returns a copy of the new set.
// The local update is visible to subsequent reads immediately; persistence
// happens in the background and is never rolled back on failure.
func (s *Store) Toggle(studentID, courseID, lessonID uint) LessonSet {
	s.mu.Lock()
	key := progressKey{studentID, courseID}
	set := s.records[key].clone()
	if set.Has(lessonID) {
		delete(set, lessonID)
	} else {
		set[lessonID] = struct{}{}
	}
	s.records[key] = set
	result := set.clone()
	s.mu.Unlock()

	if s.persister != nil {
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			if err := s.persister.SaveProgress(context.Background(), studentID, courseID, result.IDs()); err != nil && s.logger != nil {
				s.logger.Printf("progress save failed for student %d course %d: %v", studentID, courseID, err)
			}
		}()
	}
	return result
}

// Flush waits for background saves to settle. Used on shutdown and in tests.
func (s *Store) Flush() {
	s.inflight.Wait()
}
