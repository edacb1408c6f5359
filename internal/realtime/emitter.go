package realtime

import (
	"context"

	"github.com/smartshield/smartshield/internal/scanner"
)

// Emitter forwards scan outcomes into the hub's broadcast channel.
// Broadcast drops on a full channel instead of blocking, which keeps
// the scan path free of backpressure from slow dashboards.
type Emitter struct {
	hub *Hub
}

// NewEmitter creates an emitter publishing to the given hub.
func NewEmitter(hub *Hub) *Emitter {
	return &Emitter{hub: hub}
}

func (e *Emitter) ScanCompleted(_ context.Context, handle string, res *scanner.Result) {
	e.hub.BroadcastScan(map[string]interface{}{
		"handle": handle,
		"status": string(res.Status),
		"score":  res.Score,
		"source": res.Source,
	})
}

func (e *Emitter) MerchantRegistered(_ context.Context, handle, category string) {
	e.hub.BroadcastMerchantRegistered(map[string]interface{}{
		"handle":   handle,
		"category": category,
	})
}

var _ scanner.EventEmitter = (*Emitter)(nil)
