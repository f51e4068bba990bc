package model

import (
	"strings"
	"time"
)

// VerificationStatus is the reviewer's verdict on one uploaded document.
type VerificationStatus string

// Verification statuses.
const (
	StatusPending  VerificationStatus = "Pending"
	StatusVerified VerificationStatus = "Verified"
	StatusRejected VerificationStatus = "Rejected"
)

// NormalizeStatus maps a stored status string to a VerificationStatus. An
// earlier revision of the review tool decorated statuses with emoji
// ("✅ Verified", "❌ Rejected"); those forms still appear in old status files
// and must keep their meaning.
func NormalizeStatus(s string) VerificationStatus {
	if strings.Contains(s, "✅") {
		return StatusVerified
	}
	if strings.Contains(s, "❌") {
		return StatusRejected
	}
	switch VerificationStatus(strings.TrimSpace(s)) {
	case StatusVerified:
		return StatusVerified
	case StatusRejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

// VerificationRecord tracks the review lifecycle of one uploaded document.
// VerifiedAt is set only on the transition into Verified and cleared on any
// other status change. UploadedAt is nil for legacy records whose upload time
// was never captured.
type VerificationRecord struct {
	UploadedAt *time.Time         `json:"uploaded_at"`
	VerifiedAt *time.Time         `json:"verified_at"`
	Status     VerificationStatus `json:"status"`
}

// DocumentSlot is one of the proof categories an applicant may need to
// upload documents for.
type DocumentSlot string

// Document slots.
const (
	SlotRecurringPayment DocumentSlot = "recurring-payment"
	SlotMobile           DocumentSlot = "mobile"
	SlotUtility          DocumentSlot = "utility"
)

// AllSlots lists the document slots in display order.
func AllSlots() []DocumentSlot {
	return []DocumentSlot{SlotRecurringPayment, SlotMobile, SlotUtility}
}

// Label returns the human-readable category label used as the key prefix in
// the verification status store.
func (s DocumentSlot) Label() string {
	switch s {
	case SlotRecurringPayment:
		return "Rent Proofs"
	case SlotMobile:
		return "Mobile Recharge Proofs"
	case SlotUtility:
		return "Utility Bill Proofs"
	default:
		return string(s)
	}
}

// Dir returns the upload subdirectory for the slot.
func (s DocumentSlot) Dir() string {
	switch s {
	case SlotRecurringPayment:
		return "rent"
	case SlotMobile:
		return "mobile"
	case SlotUtility:
		return "utility"
	default:
		return string(s)
	}
}

// ParseDocumentSlot converts a CLI argument into a DocumentSlot. The rent
// spelling is accepted as an alias for the recurring-payment slot.
func ParseDocumentSlot(s string) (DocumentSlot, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recurring-payment", "rent":
		return SlotRecurringPayment, true
	case "mobile":
		return SlotMobile, true
	case "utility":
		return SlotUtility, true
	default:
		return "", false
	}
}

// SlotState is the disclosure gate's view of one document slot.
type SlotState string

// Slot states.
const (
	SlotNotRequired SlotState = "NotRequired"
	SlotNotUploaded SlotState = "NotUploaded"
	SlotPending     SlotState = "Pending"
	SlotVerified    SlotState = "Verified"
	SlotRejected    SlotState = "Rejected"
)
