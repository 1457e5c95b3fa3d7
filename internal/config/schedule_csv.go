package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// scheduleHeader is the column layout the extraction scripts emit.
var scheduleHeader = []string{"month", "month_payment", "principal", "interest", "balance"}

// LoadScheduleCSV reads an amortization schedule from a CSV file with columns
// month, month_payment, principal, interest, balance, and validates it.
func LoadScheduleCSV(filename string) (domain.Schedule, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule %s: %w", filename, err)
	}
	defer f.Close()

	schedule, err := ReadSchedule(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule %s: %w", filename, err)
	}
	return schedule, nil
}

// ReadSchedule parses schedule CSV rows from r.
func ReadSchedule(r io.Reader) (domain.Schedule, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < len(scheduleHeader) {
		return nil, fmt.Errorf("expected columns %v, got %v", scheduleHeader, header)
	}
	for i, name := range scheduleHeader {
		if header[i] != name {
			return nil, fmt.Errorf("expected column %d to be %q, got %q", i, name, header[i])
		}
	}

	var schedule domain.Schedule
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		month, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid month %q: %w", line, record[0], err)
		}

		entry := domain.ScheduleEntry{Month: month}
		for i, field := range []*decimal.Decimal{&entry.Payment, &entry.Principal, &entry.Interest, &entry.Balance} {
			value, err := decimal.NewFromString(record[i+1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid %s %q: %w", line, scheduleHeader[i+1], record[i+1], err)
			}
			*field = value
		}
		schedule = append(schedule, entry)
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return schedule, nil
}

// WriteScheduleCSV writes a schedule to filename in the standard layout.
func WriteScheduleCSV(filename string, schedule domain.Schedule) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	if err := WriteSchedule(f, schedule); err != nil {
		return fmt.Errorf("failed to write schedule %s: %w", filename, err)
	}
	return nil
}

// WriteSchedule writes schedule CSV rows to w.
func WriteSchedule(w io.Writer, schedule domain.Schedule) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(scheduleHeader); err != nil {
		return err
	}
	for _, entry := range schedule {
		row := []string{
			strconv.Itoa(entry.Month),
			entry.Payment.StringFixed(2),
			entry.Principal.StringFixed(2),
			entry.Interest.StringFixed(2),
			entry.Balance.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
