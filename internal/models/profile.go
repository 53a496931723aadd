package models

import "time"

type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ExamYear  int       `json:"exam_year"`
	CreatedAt time.Time `json:"created_at"`
}
