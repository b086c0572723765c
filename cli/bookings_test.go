package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

func TestApplyStatusUpdateReplacesOnlyMatchingRow(t *testing.T) {
	list := []models.Booking{
		{ID: "b1", Status: models.BookingPending},
		{ID: "b2", Status: models.BookingPending},
		{ID: "b3", Status: models.BookingCompleted},
	}

	updated := list[1]
	updated.Status = models.BookingConfirmed
	list = applyStatusUpdate(list, &updated)

	assert.Equal(t, models.BookingPending, list[0].Status)
	assert.Equal(t, models.BookingConfirmed, list[1].Status)
	assert.Equal(t, models.BookingCompleted, list[2].Status)

	// A cleaner walking one job through its lifecycle only ever touches
	// that row.
	updated.Status = models.BookingInProgress
	list = applyStatusUpdate(list, &updated)
	updated.Status = models.BookingCompleted
	list = applyStatusUpdate(list, &updated)

	assert.Equal(t, models.BookingCompleted, list[1].Status)
	assert.Equal(t, models.BookingPending, list[0].Status)
}

func TestApplyStatusUpdateUnknownIDIsNoOp(t *testing.T) {
	list := []models.Booking{{ID: "b1", Status: models.BookingPending}}
	updated := models.Booking{ID: "missing", Status: models.BookingCancelled}

	list = applyStatusUpdate(list, &updated)
	assert.Len(t, list, 1)
	assert.Equal(t, models.BookingPending, list[0].Status)
}

func TestFormatActions(t *testing.T) {
	assert.Equal(t, "-", formatActions(nil))
	assert.Equal(t, "confirmed,cancelled", formatActions([]string{"confirmed", "cancelled"}))
}
