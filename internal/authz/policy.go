package authz

// Actor is the principal behind a request. A nil actor means unauthenticated.
type Actor struct {
	UserID  string
	IsAdmin bool
}

// Action is a named operation checked against the policy.
type Action string

const (
	ActionRegister            Action = "auth.register"
	ActionLogin               Action = "auth.login"
	ActionLogout              Action = "auth.logout"
	ActionListUsers           Action = "users.list"
	ActionListActiveServices  Action = "services.list_active"
	ActionListAllServices     Action = "services.list_all"
	ActionCreateService       Action = "services.create"
	ActionUpdateService       Action = "services.update"
	ActionDeleteService       Action = "services.delete"
	ActionCreateBooking       Action = "bookings.create"
	ActionListOwnBookings     Action = "bookings.list_own"
	ActionListAllBookings     Action = "bookings.list_all"
	ActionUpdateBookingStatus Action = "bookings.update_status"
)

// CanPerform is the single authorization predicate for the whole app.
// Handlers and services all consult this table instead of re-deriving
// admin checks at each enforcement point.
func CanPerform(actor *Actor, action Action) bool {
	if actor == nil {
		return action == ActionRegister || action == ActionLogin
	}

	switch action {
	case ActionRegister, ActionLogin:
		// Already authenticated; harmless either way, allow.
		return true
	case ActionLogout, ActionListActiveServices, ActionCreateBooking, ActionListOwnBookings:
		return true
	case ActionListUsers,
		ActionListAllServices, ActionCreateService, ActionUpdateService, ActionDeleteService,
		ActionListAllBookings, ActionUpdateBookingStatus:
		return actor.IsAdmin
	}
	return false
}
