package client

import (
	"fmt"
	"time"

	bin "github.com/gagliardetto/binary"
)

// clockSize is the serialized size of the clock sysvar
const clockSize = 40

// Clock is the layout of the clock sysvar account data
type Clock struct {
	Slot                uint64
	EpochStartTimestamp int64
	Epoch               uint64
	LeaderScheduleEpoch uint64
	UnixTimestamp       int64
}

// DecodeClock decodes clock sysvar account data
func DecodeClock(data []byte) (*Clock, error) {
	if len(data) < clockSize {
		return nil, fmt.Errorf("clock account data too short: %d bytes, expected %d", len(data), clockSize)
	}

	var clock Clock
	if err := bin.NewBinDecoder(data).Decode(&clock); err != nil {
		return nil, fmt.Errorf("failed to decode clock account: %w", err)
	}
	return &clock, nil
}

// Time returns the on-chain unix timestamp as UTC time
func (c *Clock) Time() time.Time {
	return time.Unix(c.UnixTimestamp, 0).UTC()
}
