package model

// ActionType categorizes a structural change to the collection.
type ActionType string

const (
	ActionAdd     ActionType = "add"
	ActionEdit    ActionType = "edit"
	ActionDelete  ActionType = "delete"
	ActionReorder ActionType = "reorder"
)

// HistoryAction is an immutable before/after snapshot pair recorded for
// every successful mutation. Full snapshots rather than diffs are
// deliberate: the collection is bounded at MaxColors records.
type HistoryAction struct {
	Type            ActionType
	Previous        []ColorRecord
	Next            []ColorRecord
	TimestampMillis int64
	Description     string
}
