package domain

import "github.com/google/uuid"

// PocTypeWildcard marks a parameter catalog row that applies to every device type.
const PocTypeWildcard = 99

// Node is a monitored device (node_master table).
type Node struct {
	NodeID     string    `db:"node_id"`       // VARCHAR, NOT NULL
	AssetID    uuid.UUID `db:"asset_guid"`    // UUID, NOT NULL
	PocType    int       `db:"poc_type"`      // SMALLINT, selects register definitions
	CustomerID string    `db:"customer_guid"` // UUID, nullable (empty when unset)
}
