package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/habithero/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	d := entity.DateOf(time.Date(2025, time.March, 9, 23, 59, 59, 0, time.Local))
	assert.Equal(t, entity.Date{Year: 2025, Month: time.March, Day: 9}, d)
	assert.Equal(t, "2025-03-09", d.String())
}

func TestDateNext(t *testing.T) {
	t.Run("plain day", func(t *testing.T) {
		d := entity.Date{Year: 2025, Month: time.March, Day: 9}
		assert.Equal(t, entity.Date{Year: 2025, Month: time.March, Day: 10}, d.Next())
	})
	t.Run("month rollover", func(t *testing.T) {
		d := entity.Date{Year: 2025, Month: time.April, Day: 30}
		assert.Equal(t, entity.Date{Year: 2025, Month: time.May, Day: 1}, d.Next())
	})
	t.Run("year rollover", func(t *testing.T) {
		d := entity.Date{Year: 2024, Month: time.December, Day: 31}
		assert.Equal(t, entity.Date{Year: 2025, Month: time.January, Day: 1}, d.Next())
	})
	t.Run("leap day", func(t *testing.T) {
		d := entity.Date{Year: 2024, Month: time.February, Day: 28}
		assert.Equal(t, entity.Date{Year: 2024, Month: time.February, Day: 29}, d.Next())
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := entity.Date{Year: 2025, Month: time.January, Day: 2}
		raw, err := sonic.Marshal(d)
		assert.NoError(t, err)
		assert.Equal(t, `"2025-01-02"`, string(raw))
		var back entity.Date
		assert.NoError(t, sonic.Unmarshal(raw, &back))
		assert.Equal(t, d, back)
	})
	t.Run("invalid payload", func(t *testing.T) {
		var d entity.Date
		assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-date"`)))
		assert.Error(t, d.UnmarshalJSON([]byte(`42`)))
	})
}
