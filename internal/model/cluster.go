package model

import "time"

// ClusterInfoResponse is a point-in-time read of the cluster
type ClusterInfoResponse struct {
	Version string
	Slot    uint64
	Time    time.Time // UTC
}
