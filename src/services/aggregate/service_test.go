package aggregate

import (
	"testing"

	"Backend-MedDash/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(age int, weekday, noShow string) models.Appointment {
	flag := 0
	if noShow == "Yes" {
		flag = 1
	}
	return models.Appointment{Age: age, Weekday: weekday, NoShow: noShow, NoShowFlag: flag}
}

func TestAgeGroupRatesBuckets(t *testing.T) {
	rows := []models.Appointment{
		row(0, "Monday", "No"),
		row(9, "Monday", "Yes"),
		row(10, "Monday", "No"),
		row(99, "Monday", "Yes"),
	}

	rates := AgeGroupRates(rows)
	require.Len(t, rates, 10)

	assert.Equal(t, "[0,10)", rates[0].AgeGroup)
	assert.Equal(t, 2, rates[0].Count)
	require.NotNil(t, rates[0].Rate)
	assert.InDelta(t, 50.0, *rates[0].Rate, 1e-9)

	assert.Equal(t, "[10,20)", rates[1].AgeGroup)
	assert.Equal(t, 1, rates[1].Count)
	require.NotNil(t, rates[1].Rate)
	assert.InDelta(t, 0.0, *rates[1].Rate, 1e-9)

	assert.Equal(t, "[90,100)", rates[9].AgeGroup)
	require.NotNil(t, rates[9].Rate)
	assert.InDelta(t, 100.0, *rates[9].Rate, 1e-9)
}

func TestAgeGroupRatesEmptyBucketIsMissing(t *testing.T) {
	rows := []models.Appointment{row(5, "Monday", "No")}

	rates := AgeGroupRates(rows)
	require.Len(t, rates, 10)
	for _, r := range rates[1:] {
		assert.Equal(t, 0, r.Count)
		assert.Nil(t, r.Rate, "empty bucket %s must be missing, not zero", r.AgeGroup)
	}
}

func TestAgeGroupRatesOverflow(t *testing.T) {
	rows := []models.Appointment{
		row(100, "Monday", "Yes"),
		row(115, "Monday", "No"),
	}

	rates := AgeGroupRates(rows)
	require.Len(t, rates, 11)

	overflow := rates[10]
	assert.Equal(t, "100+", overflow.AgeGroup)
	assert.Equal(t, 2, overflow.Count)
	require.NotNil(t, overflow.Rate)
	assert.InDelta(t, 50.0, *overflow.Rate, 1e-9)

	// no overflow row without overflow ages
	assert.Len(t, AgeGroupRates([]models.Appointment{row(99, "Monday", "No")}), 10)
}

func TestWeekdayRatesOrderAndMissing(t *testing.T) {
	// exactly one appointment, on a Tuesday
	rows := []models.Appointment{row(30, "Tuesday", "Yes")}

	rates := WeekdayRates(rows)
	require.Len(t, rates, 7)

	for i, day := range DayOrder {
		assert.Equal(t, day, rates[i].Weekday)
	}

	require.NotNil(t, rates[1].Rate)
	assert.InDelta(t, 100.0, *rates[1].Rate, 1e-9)
	for i, r := range rates {
		if i == 1 {
			continue
		}
		assert.Nil(t, r.Rate, "weekday %s has no rows and must be missing", r.Weekday)
	}
}

func TestWeekdayCountsSumToTotal(t *testing.T) {
	rows := []models.Appointment{
		row(20, "Monday", "No"),
		row(30, "Tuesday", "Yes"),
		row(40, "Tuesday", "No"),
		row(50, "Saturday", "No"),
	}

	total := 0
	for _, r := range WeekdayRates(rows) {
		total += r.Count
	}
	assert.Equal(t, len(rows), total)
}

func TestBuildOverviewAllNoShow(t *testing.T) {
	rows := []models.Appointment{
		row(20, "Monday", "Yes"),
		row(40, "Tuesday", "Yes"),
	}

	overview := BuildOverview(rows)
	assert.Equal(t, "2", overview.TotalAppointments)
	assert.Equal(t, "30.0", overview.AverageAge)
	assert.Equal(t, "0.0%", overview.ShowRate)
	assert.Equal(t, "100.0%", overview.NoShowRate)
}

func TestBuildOverviewThousandsGrouping(t *testing.T) {
	rows := make([]models.Appointment, 0, 1200)
	for i := 0; i < 1200; i++ {
		rows = append(rows, row(30, "Monday", "No"))
	}

	overview := BuildOverview(rows)
	assert.Equal(t, "1,200", overview.TotalAppointments)
	assert.Equal(t, "100.0%", overview.ShowRate)
	assert.Equal(t, "0.0%", overview.NoShowRate)
}
