package domain

// IntentKind names a user intent reported by a tree or a lookup form.
type IntentKind string

const (
	// IntentSelect asks for a label to be selected.
	IntentSelect IntentKind = "select"
	// IntentDeselect asks for a label to be deselected.
	IntentDeselect IntentKind = "deselect"
	// IntentDelete asks the owner to delete a label.
	IntentDelete IntentKind = "delete"
	// IntentAddFavourite asks for a label to become a favourite.
	IntentAddFavourite IntentKind = "add-favourite"
	// IntentRemoveFavourite asks for a label to stop being a favourite.
	IntentRemoveFavourite IntentKind = "remove-favourite"
	// IntentSubmit carries a label draft created from a lookup result.
	IntentSubmit IntentKind = "submit"
	// IntentLoadStart signals that a lookup request started.
	IntentLoadStart IntentKind = "load-start"
	// IntentLoadFinish signals that a lookup request finished, successfully or not.
	IntentLoadFinish IntentKind = "load-finish"
)

// Intent is a single event travelling from a tree or form to its owner.
type Intent struct {
	Kind IntentKind
	// Tree is the name of the emitting tree, empty for lookup intents.
	Tree  string
	Label *Label
	Draft *LabelDraft
}
