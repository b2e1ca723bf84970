package client

import (
	"encoding/json"
	"errors"
	"os"
)

// CourseCache mirrors the last successfully fetched course list to disk so
// the next run can paint the catalog before the network refresh completes.
type CourseCache struct {
	Path string

	// writeFile is swapped in tests to simulate a full disk.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

func NewCourseCache(path string) *CourseCache {
	return &CourseCache{Path: path, writeFile: os.WriteFile}
}

// Save replaces the cached list. If the write fails the stale file is
// deleted rather than left as a corrupt partial entry.
func (c *CourseCache) Save(courses []CourseSummary) error {
	data, err := json.Marshal(courses)
	if err == nil {
		err = c.writeFile(c.Path, data, 0o644)
	}
	if err != nil {
		os.Remove(c.Path)
		return err
	}
	return nil
}

// Load returns the cached list, or nil if no usable cache exists.
func (c *CourseCache) Load() ([]CourseSummary, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var courses []CourseSummary
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Clear drops the cache.
func (c *CourseCache) Clear() error {
	err := os.Remove(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
