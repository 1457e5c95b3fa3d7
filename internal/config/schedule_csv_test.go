package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashkanta/mashkanta/internal/domain"
)

func sampleSchedule() domain.Schedule {
	row := func(month int, payment, principal, interest, balance string) domain.ScheduleEntry {
		return domain.ScheduleEntry{
			Month:     month,
			Payment:   decimal.RequireFromString(payment),
			Principal: decimal.RequireFromString(principal),
			Interest:  decimal.RequireFromString(interest),
			Balance:   decimal.RequireFromString(balance),
		}
	}
	return domain.Schedule{
		row(1, "1000.00", "600.00", "400.00", "1200.00"),
		row(2, "1000.00", "600.00", "400.00", "600.00"),
		row(3, "1000.00", "600.00", "400.00", "0.00"),
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	original := sampleSchedule()

	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, original))

	parsed, err := ReadSchedule(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, len(original))

	for i, entry := range parsed {
		assert.Equal(t, original[i].Month, entry.Month)
		assert.True(t, original[i].Payment.Equal(entry.Payment))
		assert.True(t, original[i].Principal.Equal(entry.Principal))
		assert.True(t, original[i].Interest.Equal(entry.Interest))
		assert.True(t, original[i].Balance.Equal(entry.Balance))
	}
}

func TestLoadScheduleCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, WriteScheduleCSV(path, sampleSchedule()))

	schedule, err := LoadScheduleCSV(path)
	require.NoError(t, err)
	assert.Len(t, schedule, 3)
	assert.True(t, schedule.TotalInterest().Equal(decimal.NewFromInt(1200)))
}

func TestLoadScheduleCSV_MissingFile(t *testing.T) {
	_, err := LoadScheduleCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open schedule")
}

func TestReadSchedule_BadHeader(t *testing.T) {
	_, err := ReadSchedule(strings.NewReader("month,payment,principal,interest,balance\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `expected column 1 to be "month_payment"`)

	_, err = ReadSchedule(strings.NewReader("month,month_payment\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected columns")
}

func TestReadSchedule_BadValues(t *testing.T) {
	_, err := ReadSchedule(strings.NewReader(
		"month,month_payment,principal,interest,balance\nx,1000,600,400,0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid month")

	_, err = ReadSchedule(strings.NewReader(
		"month,month_payment,principal,interest,balance\n1,abc,600,400,0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid month_payment")
}

func TestReadSchedule_ValidatesStructure(t *testing.T) {
	// Months 1 and 3 with a gap must be rejected after parsing.
	_, err := ReadSchedule(strings.NewReader(
		"month,month_payment,principal,interest,balance\n" +
			"1,1000,600,400,600\n" +
			"3,1000,600,400,0\n"))
	var mismatch *domain.ScheduleMismatchError
	assert.ErrorAs(t, err, &mismatch)
}
