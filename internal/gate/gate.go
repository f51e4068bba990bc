// Package gate decides whether a computed trust score may be disclosed,
// based on the verification state of the applicant's required document slots.
package gate

import "github.com/trucred/trucred/internal/model"

// Decision is the gate's verdict. It always carries the state of every slot
// so callers can tell the applicant exactly what is outstanding instead of
// showing a score.
type Decision struct {
	Slots       map[model.DocumentSlot]model.SlotState
	Outstanding []model.DocumentSlot
	Allowed     bool
}

// Evaluate applies the disclosure rule: the score may be revealed iff every
// required slot is Verified. The recurring-payment slot is always required;
// the mobile and utility slots are required only when their triggering
// answer is Yes. Evaluate is total and never fails; loading the verification
// records is the caller's problem.
func Evaluate(in model.BehavioralInput, docs map[model.DocumentSlot][]model.VerificationRecord) Decision {
	decision := Decision{
		Slots:   make(map[model.DocumentSlot]model.SlotState, 3),
		Allowed: true,
	}

	for _, slot := range model.AllSlots() {
		state := slotState(slotRequired(slot, in), docs[slot])
		decision.Slots[slot] = state
		if state == model.SlotNotRequired || state == model.SlotVerified {
			continue
		}
		decision.Allowed = false
		decision.Outstanding = append(decision.Outstanding, slot)
	}

	return decision
}

func slotRequired(slot model.DocumentSlot, in model.BehavioralInput) bool {
	switch slot {
	case model.SlotMobile:
		return in.MobileRechargeRegular == model.Yes
	case model.SlotUtility:
		return in.UtilityBillInName == model.Yes
	default:
		return true
	}
}

// slotState folds a slot's documents into a single state. A rejected
// document does not close the slot for good: uploading a fresh document
// enters Pending alongside it, so the best status wins — Verified over
// Pending over Rejected.
func slotState(required bool, records []model.VerificationRecord) model.SlotState {
	if !required {
		return model.SlotNotRequired
	}
	if len(records) == 0 {
		return model.SlotNotUploaded
	}

	state := model.SlotRejected
	for _, record := range records {
		switch record.Status {
		case model.StatusVerified:
			return model.SlotVerified
		case model.StatusPending:
			state = model.SlotPending
		case model.StatusRejected:
			// Keeps the slot Rejected only if nothing better shows up.
		}
	}
	return state
}
