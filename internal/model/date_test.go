package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := Date{Year: 2026, Month: time.October, Day: 19}

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-19"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}

func TestDate_UnmarshalTimestampUsesItsOffset(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-19T22:00:00-05:00"`), &d))
	assert.Equal(t, "2026-10-19", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"19/10/2026"`), &d))
}

func TestDate_Compare(t *testing.T) {
	a, _ := ParseDate("2026-10-19")
	b, _ := ParseDate("2026-10-20")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-10-19", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-02")))
	assert.Equal(t, "2026-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
