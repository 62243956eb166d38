package constants

// Request lifecycle statuses. PENDING is the only status ever set at
// creation; nothing enforces a transition graph beyond that, any status may
// follow any status.
const (
	StatusPending     = "PENDING"
	StatusUnderReview = "UNDER_REVIEW"
	StatusQuoteSent   = "QUOTE_SENT"
	StatusApproved    = "APPROVED"
	StatusInProgress  = "IN_PROGRESS"
	StatusCompleted   = "COMPLETED"
	StatusDelivered   = "DELIVERED"
	StatusCancelled   = "CANCELLED"
	StatusOnHold      = "ON_HOLD"
)

var RequestStatuses = []string{
	StatusPending,
	StatusUnderReview,
	StatusQuoteSent,
	StatusApproved,
	StatusInProgress,
	StatusCompleted,
	StatusDelivered,
	StatusCancelled,
	StatusOnHold,
}

func IsValidStatus(code string) bool {
	for _, s := range RequestStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// Delivery tiers. Each carries a fixed per-page rate, see services pricing.
const (
	UrgencyStandard = "STANDARD"
	UrgencyNextDay  = "NEXT_DAY"
	UrgencySameDay  = "SAME_DAY"
)

var Urgencies = []string{UrgencyStandard, UrgencyNextDay, UrgencySameDay}

func IsValidUrgency(code string) bool {
	for _, u := range Urgencies {
		if u == code {
			return true
		}
	}
	return false
}

const (
	DocumentTypeLegal     = "LEGAL"
	DocumentTypeMedical   = "MEDICAL"
	DocumentTypeTechnical = "TECHNICAL"
	DocumentTypeBusiness  = "BUSINESS"
	DocumentTypeAcademic  = "ACADEMIC"
	DocumentTypePersonal  = "PERSONAL"
	DocumentTypeCertified = "CERTIFIED"
	DocumentTypeOther     = "OTHER"
)

var DocumentTypes = []string{
	DocumentTypeLegal,
	DocumentTypeMedical,
	DocumentTypeTechnical,
	DocumentTypeBusiness,
	DocumentTypeAcademic,
	DocumentTypePersonal,
	DocumentTypeCertified,
	DocumentTypeOther,
}

func IsValidDocumentType(code string) bool {
	for _, d := range DocumentTypes {
		if d == code {
			return true
		}
	}
	return false
}

// FileURLPending is the sentinel stored between request creation and a
// successful upload. It must never be visible on the customer-facing
// success path.
const FileURLPending = "pending"

// Actor recorded on the synthetic first history entry.
const SystemActor = "System"

// Staff roles carried in JWT claims.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)
