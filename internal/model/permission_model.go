package model

import "time"

// Permission rows carry a surrogate ID because the tabular store addresses
// rows positionally. No unique constraint on the pair: the store mirrors the
// spreadsheet, the pair invariant lives in the service layer.
type Permission struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	NotebookID string    `gorm:"type:varchar(128);not null;index"`
	UserEmail  string    `gorm:"type:varchar(255);not null;index"`
	Role       string    `gorm:"type:varchar(16);not null"`
	Status     string    `gorm:"type:varchar(16);not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

func (Permission) TableName() string {
	return "permissions"
}
