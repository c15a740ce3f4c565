package publisherv1

import snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"

// TypeUpdate tags a depth diff message.
const TypeUpdate = "update"

// DepthUpdate is the message broadcast on an instrument's depth channel.
type DepthUpdate struct {
	Type      string              `json:"type"`
	ProductID string              `json:"product_id"`
	Updates   snapshotv1.Snapshot `json:"updates"`
}

// NewDepthUpdate wraps a diff for productID.
func NewDepthUpdate(productID string, updates snapshotv1.Snapshot) DepthUpdate {
	return DepthUpdate{Type: TypeUpdate, ProductID: productID, Updates: updates}
}
