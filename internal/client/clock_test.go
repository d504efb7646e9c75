package client

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClock(t *testing.T) {
	data := make([]byte, clockSize)
	binary.LittleEndian.PutUint64(data[0:], 42)
	binary.LittleEndian.PutUint64(data[8:], 1_600_000_000)
	binary.LittleEndian.PutUint64(data[16:], 3)
	binary.LittleEndian.PutUint64(data[24:], 4)
	binary.LittleEndian.PutUint64(data[32:], 1_700_000_000)

	clock, err := DecodeClock(data)
	require.NoError(t, err)
	assert.Equal(t, &Clock{
		Slot:                42,
		EpochStartTimestamp: 1_600_000_000,
		Epoch:               3,
		LeaderScheduleEpoch: 4,
		UnixTimestamp:       1_700_000_000,
	}, clock)
	assert.Equal(t, "2023-11-14 22:13:20", clock.Time().Format(time.DateTime))
}

func TestDecodeClockNegativeTimestamp(t *testing.T) {
	data := make([]byte, clockSize)
	ts := int64(-86400)
	binary.LittleEndian.PutUint64(data[32:], uint64(ts))

	clock, err := DecodeClock(data)
	require.NoError(t, err)
	assert.Equal(t, "1969-12-31 00:00:00", clock.Time().Format(time.DateTime))
}

func TestDecodeClockShort(t *testing.T) {
	_, err := DecodeClock(make([]byte, 39))
	require.Error(t, err)
}
