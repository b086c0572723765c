package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("Str0ng!pass"))

	assert.Error(t, validatePassword("Sh0rt!a"), "under 8 characters")
	assert.Error(t, validatePassword("alllower1!"), "no uppercase")
	assert.Error(t, validatePassword("ALLUPPER1!"), "no lowercase")
	assert.Error(t, validatePassword("NoDigits!!"), "no digit")
	assert.Error(t, validatePassword("NoSpecial1"), "no special character")
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("jane@example.com"))
	assert.Error(t, validateEmail("jane@example"))
	assert.Error(t, validateEmail("not-an-email"))
	assert.Error(t, validateEmail("two words@example.com"))
}

func TestValidateStartTime(t *testing.T) {
	for _, ok := range []string{"00:00", "9:30", "09:30", "23:59"} {
		assert.NoError(t, validateStartTime(ok), ok)
	}
	for _, bad := range []string{"24:00", "12:60", "noon", "9.30", ""} {
		assert.Error(t, validateStartTime(bad), bad)
	}
}

func TestValidateScheduledDate(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	assert.NoError(t, validateScheduledDate(tomorrow))

	// Same-day bookings stay valid all day in the local timezone.
	today := time.Now().Format("2006-01-02")
	assert.NoError(t, validateScheduledDate(today))

	yesterday := time.Now().Add(-48 * time.Hour).Format("2006-01-02")
	assert.Error(t, validateScheduledDate(yesterday))
	assert.Error(t, validateScheduledDate("31-12-2026"))
	assert.Error(t, validateScheduledDate(""))
}

func TestValidateAddress(t *testing.T) {
	good := models.Address{Street: "12 Rose Lane", City: "Pune", State: "MH", Pincode: "411001"}
	assert.NoError(t, validateAddress(good))

	short := good
	short.Street = "12"
	assert.Error(t, validateAddress(short))

	badPin := good
	badPin.Pincode = "4110"
	assert.Error(t, validateAddress(badPin))

	letters := good
	letters.Pincode = "41100a"
	assert.Error(t, validateAddress(letters))
}

func TestParseLatLon(t *testing.T) {
	lat, lon, err := parseLatLon("19.076, 72.8777")
	assert.NoError(t, err)
	assert.Equal(t, 19.076, lat)
	assert.Equal(t, 72.8777, lon)

	for _, bad := range []string{"19.076", "91,0", "0,181", "north,west", ""} {
		_, _, err := parseLatLon(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateRoleAndRating(t *testing.T) {
	assert.NoError(t, validateRole(models.RoleCustomer))
	assert.NoError(t, validateRole(models.RoleCleaner))
	assert.Error(t, validateRole("admin"))

	assert.NoError(t, validateRating(1))
	assert.NoError(t, validateRating(5))
	assert.Error(t, validateRating(0))
	assert.Error(t, validateRating(6))
}
