package gate

// Action describes the kind of operation a user wants to perform.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

// ActionForMethod maps an HTTP method on a REST resource to an Action.
// collection is true for requests on the collection path (no id).
func ActionForMethod(method string, collection bool) Action {
	switch method {
	case "POST":
		return ActionCreate
	case "PUT", "PATCH":
		return ActionUpdate
	case "DELETE":
		return ActionDelete
	default:
		if collection {
			return ActionList
		}
		return ActionView
	}
}
