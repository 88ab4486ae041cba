package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/toolup/internal/core/ports"
)

// NodeID is the unique identifier for the receipt store Graft node.
const NodeID graft.ID = "adapter.state.receipts"

func init() {
	graft.Register(graft.Node[ports.ReceiptStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReceiptStore, error) {
			return NewStore(domain.DefaultReceiptsPath())
		},
	})
}
