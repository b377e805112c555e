package constants

// Room status (room_statuses.status)
const (
	RoomStatusFree        = 0
	RoomStatusBooked      = 1
	RoomStatusMaintenance = 2
)

// Desired states accepted by the status endpoints
const (
	StateAvailable   = "available"
	StateOccupied    = "occupied"
	StateCleaning    = "cleaning"
	StateMaintenance = "maintenance"
	StateCheckedIn   = "checked-in"
	StateCheckedOut  = "checked-out"
)

// Mutation kinds
const (
	MutationStatus   = "status"
	MutationCheckIn  = "check-in"
	MutationCheckOut = "check-out"
)

// CategoryAll là bộ lọc gộp tất cả loại phòng
const CategoryAll = "all"

// RoomStateFor maps a desired room state onto a room_statuses value.
func RoomStateFor(state string) (int, bool) {
	switch state {
	case StateAvailable, StateCheckedOut, StateCleaning:
		return RoomStatusFree, true
	case StateOccupied, StateCheckedIn:
		return RoomStatusBooked, true
	case StateMaintenance:
		return RoomStatusMaintenance, true
	}
	return 0, false
}
