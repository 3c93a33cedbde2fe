package model

import "time"

// Stage is a position in the fixed, totally ordered proposal lifecycle.
type Stage string

const (
	StageDraft          Stage = "draft"
	StageSentToClient   Stage = "sent_to_client"
	StageClientReview   Stage = "client_review"
	StageNegotiation    Stage = "negotiation"
	StageRevision       Stage = "revision"
	StageApproved       Stage = "approved"
	StageContractSigned Stage = "contract_signed"
)

// StageLabels maps each stage to its display label.
var StageLabels = map[Stage]string{
	StageDraft:          "Draft",
	StageSentToClient:   "Sent to Client",
	StageClientReview:   "Client Review",
	StageNegotiation:    "Negotiation",
	StageRevision:       "Revision",
	StageApproved:       "Approved",
	StageContractSigned: "Contract Signed",
}

// IsValid reports whether s is one of the seven known stages.
func (s Stage) IsValid() bool {
	_, ok := StageLabels[s]
	return ok
}

// Proposal is a sales proposal moving through the stage lifecycle.
// The seven per-stage dates are a historical record independent of the
// stage pointer: moving the pointer backward leaves them in place.
type Proposal struct {
	ID          string  `json:"id" db:"id"`
	ProjectID   *string `json:"project_id,omitempty" db:"project_id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	ClientName  string  `json:"client_name,omitempty" db:"client_name"`
	ClientEmail string  `json:"client_email,omitempty" db:"client_email"`

	// Value is the monetary value; currency is not modeled.
	Value *float64 `json:"value,omitempty" db:"value"`

	Stage              Stage `json:"stage" db:"stage"`
	ProbabilityToClose int   `json:"probability_to_close" db:"probability_to_close"`

	DraftDate       *Date `json:"draft_date,omitempty" db:"draft_date"`
	SentDate        *Date `json:"sent_date,omitempty" db:"sent_date"`
	ReviewDate      *Date `json:"review_date,omitempty" db:"review_date"`
	NegotiationDate *Date `json:"negotiation_date,omitempty" db:"negotiation_date"`
	RevisionDate    *Date `json:"revision_date,omitempty" db:"revision_date"`
	ApprovalDate    *Date `json:"approval_date,omitempty" db:"approval_date"`
	SignedDate      *Date `json:"signed_date,omitempty" db:"signed_date"`

	Notes     string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Project is populated by list queries that join projects.
	Project *Project `json:"project,omitempty" db:"-"`
}
