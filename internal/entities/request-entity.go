package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// TranslationRequest is one customer translation order and its full
// lifecycle state. Version guards staff updates against lost writes.
type TranslationRequest struct {
	ID               string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    null.String
	CustomerAddress  null.String
	SourceLanguage   string
	TargetLanguage   string
	DocumentType     string
	Urgency          string
	Specialization   null.String
	AdditionalNotes  null.String
	NumberOfPages    int
	OriginalFileName string
	FileURL          string
	FileSize         int64
	FileType         string
	Status           string
	EstimatedPrice   null.Float64
	FinalPrice       null.Float64
	EstimatedDelivery null.Time
	ActualDelivery   null.Time
	AdminNotes       null.String
	AssignedTo       null.String
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StatusHistory is one immutable record of a status assignment, owned by a
// TranslationRequest and deleted with it.
type StatusHistory struct {
	ID        uint64
	RequestID string
	Status    string
	Notes     string
	ChangedBy string
	CreatedAt time.Time
}
