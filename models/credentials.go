package models

type Role string

const (
	ADMIN     Role = "ADMIN"
	ATENDENTE Role = "ATENDENTE"
	TECNICO   Role = "TECNICO"
	VIEWER    Role = "VIEWER"
	NO_ROLE   Role = "NO_ROLE"
)

func RoleFrom(s string) Role {
	switch s {
	case "ADMIN":
		return ADMIN
	case "ATENDENTE":
		return ATENDENTE
	case "TECNICO":
		return TECNICO
	case "VIEWER":
		return VIEWER
	default:
		return NO_ROLE
	}
}

// SystemActorName is recorded on events produced without an authenticated
// actor (automated flows, background jobs).
const SystemActorName = "System"

type ActorIdentity struct {
	UserId string
	Name   string
	Email  string
}

type Credentials struct {
	OrganizationId string
	Role           Role
	ActorIdentity  ActorIdentity
}

// ActorNameOrSystem returns the display name to attribute an audit event to,
// falling back to the System sentinel when no actor identity is present.
func (c Credentials) ActorNameOrSystem() string {
	if c.ActorIdentity.Name != "" {
		return c.ActorIdentity.Name
	}
	return SystemActorName
}

func (c Credentials) ActorIdOrNil() *string {
	if c.ActorIdentity.UserId == "" {
		return nil
	}
	userId := c.ActorIdentity.UserId
	return &userId
}
