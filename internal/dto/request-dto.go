package dto

import (
	"time"

	"translation-office/pkg/types"
)

// CreateRequestDTO is the public intake payload. The document either arrives
// pre-uploaded (fileUrl + metadata set) or inline as a multipart file, in
// which case the controller fills the file fields from the upload header.
type CreateRequestDTO struct {
	CustomerName     string  `json:"customerName" validate:"required,max=100"`
	CustomerEmail    string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone    string  `json:"customerPhone" validate:"omitempty,phone_shape"`
	CustomerAddress  string  `json:"customerAddress" validate:"omitempty,max=500"`
	SourceLanguage   string  `json:"sourceLanguage" validate:"required"`
	TargetLanguage   string  `json:"targetLanguage" validate:"required,nefield=SourceLanguage"`
	DocumentType     string  `json:"documentType" validate:"required,oneof=LEGAL MEDICAL TECHNICAL BUSINESS ACADEMIC PERSONAL CERTIFIED OTHER"`
	Urgency          string  `json:"urgency" validate:"omitempty,oneof=STANDARD NEXT_DAY SAME_DAY"`
	Specialization   string  `json:"specialization" validate:"omitempty,max=500"`
	AdditionalNotes  string  `json:"additionalNotes" validate:"omitempty,max=2000"`
	NumberOfPages    string  `json:"numberOfPages" validate:"required,page_count"`
	HardCopy         bool    `json:"hardCopy"`
	OriginalFileName string  `json:"originalFileName"`
	FileURL          string  `json:"fileUrl"`
	FileSize         int64   `json:"fileSize"`
	FileType         string  `json:"fileType"`
}

// UpdateRequestDTO is the staff update payload. Nil pointers leave the
// stored value untouched; a pointer to an empty value clears the column.
// Version must match the stored row or the update is rejected with 409.
type UpdateRequestDTO struct {
	Status            *string    `json:"status" validate:"omitempty,oneof=PENDING UNDER_REVIEW QUOTE_SENT APPROVED IN_PROGRESS COMPLETED DELIVERED CANCELLED ON_HOLD"`
	EstimatedPrice    *float64   `json:"estimatedPrice" validate:"omitempty,gte=0"`
	FinalPrice        *float64   `json:"finalPrice" validate:"omitempty,gte=0"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	ActualDelivery    *time.Time `json:"actualDelivery"`
	AdminNotes        *string    `json:"adminNotes"`
	AssignedTo        *string    `json:"assignedTo"`
	Version           int64      `json:"version" validate:"required,gte=1"`
}

type TransitionStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=PENDING UNDER_REVIEW QUOTE_SENT APPROVED IN_PROGRESS COMPLETED DELIVERED CANCELLED ON_HOLD"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

type StatusHistoryDTO struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	ChangedBy string    `json:"changedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// RequestDTO is the wire shape shared by the list, find and update
// responses. NumberOfPages stays numeric text on the wire.
type RequestDTO struct {
	ID                string             `json:"id"`
	CustomerName      string             `json:"customerName"`
	CustomerEmail     string             `json:"customerEmail"`
	CustomerPhone     *string            `json:"customerPhone,omitempty"`
	CustomerAddress   *string            `json:"customerAddress,omitempty"`
	SourceLanguage    string             `json:"sourceLanguage"`
	TargetLanguage    string             `json:"targetLanguage"`
	DocumentType      string             `json:"documentType"`
	Urgency           string             `json:"urgency"`
	Specialization    *string            `json:"specialization,omitempty"`
	AdditionalNotes   *string            `json:"additionalNotes,omitempty"`
	NumberOfPages     string             `json:"numberOfPages"`
	OriginalFileName  string             `json:"originalFileName"`
	FileURL           string             `json:"fileUrl"`
	FileSize          int64              `json:"fileSize"`
	FileType          string             `json:"fileType"`
	Status            string             `json:"status"`
	EstimatedPrice    *float64           `json:"estimatedPrice,omitempty"`
	FinalPrice        *float64           `json:"finalPrice,omitempty"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time         `json:"actualDelivery,omitempty"`
	AdminNotes        *string            `json:"adminNotes,omitempty"`
	AssignedTo        *string            `json:"assignedTo,omitempty"`
	Version           int64              `json:"version"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	StatusHistory     []StatusHistoryDTO `json:"statusHistory"`
}

type ListRequestsResponse struct {
	Requests   []RequestDTO     `json:"requests"`
	Pagination types.Pagination `json:"pagination"`
}

type CreateRequestResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
	Message   string `json:"message"`
}

type QuoteDTO struct {
	NumberOfPages string  `json:"numberOfPages"`
	Urgency       string  `json:"urgency"`
	HardCopy      bool    `json:"hardCopy"`
	Price         float64 `json:"price"`
}

type UploadResponseDTO struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	FileRef  string `json:"fileRef"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}
