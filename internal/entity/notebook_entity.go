package entity

import "time"

type Notebook struct {
	NotebookID  string
	Name        string
	Owner       string
	CreatedDate time.Time
}
