package storage

import "time"

// KVEntryModel is the GORM model for the kv_entries table. Each row holds
// one logical JSON document (sessions, streak, tasks, notes).
type KVEntryModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey;column:key"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (KVEntryModel) TableName() string { return "kv_entries" }
