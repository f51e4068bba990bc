package documents_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucred/trucred/internal/common"
	"github.com/trucred/trucred/internal/gate"
	"github.com/trucred/trucred/internal/model"
	"github.com/trucred/trucred/internal/testutil"
	"github.com/trucred/trucred/internal/verification"
)

func TestStore_SaveCreatesPendingRecord(t *testing.T) {
	stores := testutil.SetupStores(t)

	storedName, err := stores.Documents.Save(model.SlotRecurringPayment, "proof.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(storedName, "_proof.pdf"))

	record, err := stores.Ledger.Get(verification.Key(model.SlotRecurringPayment, storedName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, record.Status)
	assert.NotNil(t, record.UploadedAt)

	data, err := os.ReadFile(filepath.Join(stores.Dir, "uploads", "rent", storedName))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestStore_SaveDistinctNamesForSameFilename(t *testing.T) {
	stores := testutil.SetupStores(t)

	first, err := stores.Documents.Save(model.SlotMobile, "statement.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := stores.Documents.Save(model.SlotMobile, "statement.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStore_ListSkipsHiddenFiles(t *testing.T) {
	stores := testutil.SetupStores(t)

	storedName, err := stores.Documents.Save(model.SlotUtility, "bill.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	hidden := filepath.Join(stores.Dir, "uploads", "utility", ".DS_Store")
	require.NoError(t, os.WriteFile(hidden, []byte{}, 0o600))

	names, err := stores.Documents.List(model.SlotUtility)
	require.NoError(t, err)
	assert.Equal(t, []string{storedName}, names)
}

func TestStore_ListEmptySlot(t *testing.T) {
	stores := testutil.SetupStores(t)

	names, err := stores.Documents.List(model.SlotMobile)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_DeleteRemovesFileAndRecord(t *testing.T) {
	stores := testutil.SetupStores(t)

	storedName, err := stores.Documents.Save(model.SlotRecurringPayment, "proof.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, stores.Documents.Delete(model.SlotRecurringPayment, storedName))

	_, err = stores.Ledger.Get(verification.Key(model.SlotRecurringPayment, storedName))
	assert.ErrorIs(t, err, common.ErrNotFound)
	names, err := stores.Documents.List(model.SlotRecurringPayment)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_DeleteMissingFileKeepsRecord(t *testing.T) {
	stores := testutil.SetupStores(t)

	storedName, err := stores.Documents.Save(model.SlotRecurringPayment, "proof.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	err = stores.Documents.Delete(model.SlotRecurringPayment, "no_such_file.pdf")
	require.Error(t, err)
	var userErr *common.UserError
	assert.True(t, errors.As(err, &userErr), "delete failure should be a user-facing warning")

	// The real document's record is untouched.
	record, err := stores.Ledger.Get(verification.Key(model.SlotRecurringPayment, storedName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, record.Status)
}

func TestStore_RecordsDefaultsUnledgeredFilesToPending(t *testing.T) {
	stores := testutil.SetupStores(t)

	// A file that landed on disk without going through Save.
	dir := filepath.Join(stores.Dir, "uploads", "mobile")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.png"), []byte("x"), 0o600))

	records, err := stores.Documents.Records()
	require.NoError(t, err)
	require.Len(t, records[model.SlotMobile], 1)
	assert.Equal(t, model.StatusPending, records[model.SlotMobile][0].Status)
}

// Full upload-review-disclose flow against real stores.
func TestUploadReviewDiscloseFlow(t *testing.T) {
	stores := testutil.SetupStores(t)
	in := model.BehavioralInput{
		RentMonthsOnTime:      5,
		MobileRechargeRegular: model.Yes,
		UtilityBillInName:     model.No,
		ReferenceFeedback:     model.FeedbackPositive,
		HasLedger:             true,
	}

	rentDoc, err := stores.Documents.Save(model.SlotRecurringPayment, "rent.pdf", strings.NewReader("r"))
	require.NoError(t, err)
	mobileDoc, err := stores.Documents.Save(model.SlotMobile, "recharge.png", strings.NewReader("m"))
	require.NoError(t, err)

	// Both uploads pending: blocked.
	records, err := stores.Documents.Records()
	require.NoError(t, err)
	decision := gate.Evaluate(in, records)
	assert.False(t, decision.Allowed)
	assert.Equal(t, []model.DocumentSlot{model.SlotRecurringPayment, model.SlotMobile}, decision.Outstanding)

	// Reviewer verifies rent only: still blocked on mobile.
	require.NoError(t, stores.Ledger.SetStatus(verification.Key(model.SlotRecurringPayment, rentDoc), model.StatusVerified))
	records, err = stores.Documents.Records()
	require.NoError(t, err)
	decision = gate.Evaluate(in, records)
	assert.False(t, decision.Allowed)
	assert.Equal(t, []model.DocumentSlot{model.SlotMobile}, decision.Outstanding)

	// Mobile verified too: disclosure allowed.
	require.NoError(t, stores.Ledger.SetStatus(verification.Key(model.SlotMobile, mobileDoc), model.StatusVerified))
	records, err = stores.Documents.Records()
	require.NoError(t, err)
	decision = gate.Evaluate(in, records)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Outstanding)
	assert.Equal(t, model.SlotNotRequired, decision.Slots[model.SlotUtility])
}
