package models

// Status is the lifecycle state of a vehicle. The five values form a closed
// set: transition rules in the lifecycle service depend on exactly these, so
// they are modelled as an enum rather than free text like the other facets.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusInTransit   Status = "in_transit"
	StatusMaintenance Status = "maintenance"
	StatusReserved    Status = "reserved"
	StatusSold        Status = "sold"
)

// AllStatuses lists every valid status in dashboard display order.
var AllStatuses = []Status{
	StatusAvailable,
	StatusInTransit,
	StatusMaintenance,
	StatusReserved,
	StatusSold,
}

// IsValid reports whether s is one of the five known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusInTransit, StatusMaintenance, StatusReserved, StatusSold:
		return true
	}
	return false
}

// String returns the wire label of the status.
func (s Status) String() string {
	return string(s)
}
