package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(time.Date(2025, time.February, 14, 12, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), w.End)
}

func TestYearWindow(t *testing.T) {
	w := YearWindow(2024)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), w.End)
}

func TestAlignedWindow(t *testing.T) {
	w := AlignedWindow(
		time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), w.End)
}

func TestMonths(t *testing.T) {
	t.Run("count equals span plus one", func(t *testing.T) {
		w := TimeWindow{
			Start: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		}
		months := w.Months()
		require.Len(t, months, 4)
		assert.Equal(t, "Nov", months[0].Label())
		assert.Equal(t, "Dec", months[1].Label())
		assert.Equal(t, "Jan", months[2].Label())
		assert.Equal(t, "Feb", months[3].Label())
	})

	t.Run("strictly ascending", func(t *testing.T) {
		months := YearWindow(2025).Months()
		require.Len(t, months, 12)
		for i := 1; i < len(months); i++ {
			assert.True(t, months[i].Start.After(months[i-1].Start))
		}
	})

	t.Run("single month", func(t *testing.T) {
		w := MonthWindow(time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC))
		assert.Len(t, w.Months(), 1)
	})
}

func TestPrev(t *testing.T) {
	w := MonthWindow(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	prev := w.Prev()
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), prev.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), prev.End)
}
