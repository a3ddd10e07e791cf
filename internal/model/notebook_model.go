package model

import "time"

type Notebook struct {
	NotebookID   string    `gorm:"type:varchar(128);primaryKey"`
	NotebookName string    `gorm:"type:varchar(255);not null"`
	Owner        string    `gorm:"type:varchar(128);not null"`
	CreatedDate  time.Time `gorm:"not null"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
