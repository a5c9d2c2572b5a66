package maze

import "fmt"

// Role is the semantic tag of a square.
type Role uint8

// Roles. The ordinals are part of the file format and must not change.
const (
	RoleNone Role = iota
	RoleExterior
	RoleEntrance
	RoleExit
	RoleWall
	RoleEnemy
	RoleReward

	roleCount
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r < roleCount
}

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "NONE"
	case RoleExterior:
		return "EXTERIOR"
	case RoleEntrance:
		return "ENTRANCE"
	case RoleExit:
		return "EXIT"
	case RoleWall:
		return "WALL"
	case RoleEnemy:
		return "ENEMY"
	case RoleReward:
		return "REWARD"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}
