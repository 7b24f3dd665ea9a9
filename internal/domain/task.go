package domain

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Defaults applied when a task is created without an explicit color or icon
const (
	DefaultTaskColor = "#4ECDC4"
	DefaultTaskIcon  = "🎯"
)

// MaxTaskNameLength is the upper bound on task labels, in runes
const MaxTaskNameLength = 30

// Task is a user-defined label attached to focus sessions
type Task struct {
	Color string `json:"color"`
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Name  string `json:"name"`
}

// TaskUpdate carries a partial edit; nil fields are left unchanged
type TaskUpdate struct {
	Color *string
	Icon  *string
	Name  *string
}

// ValidateTaskName enforces the 1-30 character limit. Color and icon come
// from a fixed palette in the UI but membership is not enforced here.
func ValidateTaskName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > MaxTaskNameLength {
		return fmt.Errorf("%w: got %d characters", ErrInvalidTaskName, n)
	}
	return nil
}

// NewTask creates a task with defaults filled in for empty color/icon
func NewTask(name, color, icon string, now time.Time) (Task, error) {
	if err := ValidateTaskName(name); err != nil {
		return Task{}, err
	}
	if color == "" {
		color = DefaultTaskColor
	}
	if icon == "" {
		icon = DefaultTaskIcon
	}
	return Task{
		Color: color,
		ID:    strconv.FormatInt(now.UnixMilli(), 10),
		Icon:  icon,
		Name:  name,
	}, nil
}

// Apply merges the provided fields into the task
func (t Task) Apply(update TaskUpdate) Task {
	if update.Name != nil {
		t.Name = *update.Name
	}
	if update.Color != nil {
		t.Color = *update.Color
	}
	if update.Icon != nil {
		t.Icon = *update.Icon
	}
	return t
}
