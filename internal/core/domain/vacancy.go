package domain

import (
	"errors"
	"time"
)

var ErrVacancyNotFound = errors.New("vacancy not found")

// Write operations report how many records they touched. A zero count after a
// structurally valid request is surfaced as one of these errors; the transport
// layer renders all three as a generic 400.
var ErrNothingSaved = errors.New("there was an error saving the record")
var ErrNothingUpdated = errors.New("there was an error updating the record")
var ErrNothingRemoved = errors.New("there was an error removing the record")

// Field length limits enforced before any write reaches the store.
const (
	TitleMaxLen       = 240
	DescriptionMaxLen = 1024
	CompanyMaxLen     = 120
)

// Vacancy is the single domain entity: one open (or closed) job posting.
// ID is a UUID string, immutable once assigned. MinSalary and MaxSalary are
// stored as given; the pair is intentionally not cross-checked.
type Vacancy struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Company     string    `json:"company" bson:"company"`
	IsOpen      bool      `json:"isOpen" bson:"is_open"`
	MinSalary   float64   `json:"minSalary" bson:"min_salary"`
	MaxSalary   float64   `json:"maxSalary" bson:"max_salary"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}
