package list

// ActionKind selects how a row action renders.
type ActionKind string

const (
	// ActionLink navigates to Href.
	ActionLink ActionKind = "link"
	// ActionCopy copies Value to the clipboard.
	ActionCopy ActionKind = "copy"
	// ActionDanger navigates to a confirmation page at Href.
	ActionDanger ActionKind = "danger"
)

// Action is one entry of a row menu.
type Action struct {
	Label string
	Kind  ActionKind
	Href  string
	Value string
}

// RowActions builds the standard menu for a resource at base ("/projects").
// Edit and Delete are included only when their path segment
// ("update-project", "delete-project") is non-empty.
func RowActions(base, id, editPath, deletePath string) []Action {
	actions := []Action{{Label: "View", Kind: ActionLink, Href: base + "/" + id}}
	if editPath != "" {
		actions = append(actions, Action{Label: "Edit", Kind: ActionLink, Href: base + "/" + editPath + "/" + id})
	}
	if deletePath != "" {
		actions = append(actions, Action{Label: "Delete", Kind: ActionDanger, Href: base + "/" + deletePath + "/" + id})
	}
	return actions
}

// CopyAction copies value; it is omitted when value is empty.
func CopyAction(label, value string) []Action {
	if value == "" {
		return nil
	}
	return []Action{{Label: label, Kind: ActionCopy, Value: value}}
}
