package booking

// Status classifies how a mutation ended.
type Status int

const (
	// StatusSuccess means the change was committed.
	StatusSuccess Status = iota
	// StatusDuplicate means a create was refused because an entity of the
	// same kind already carries that exact name; nothing was written.
	StatusDuplicate
	// StatusFailed means validation or the store rejected the operation;
	// any partial work was rolled back.
	StatusFailed
	// StatusNotFound means the target id matched no record.
	StatusNotFound
)

// Outcome is what every mutation reports back to the presentation layer:
// a status plus a message fit to show the user as-is.
type Outcome struct {
	Status  Status
	Message string
}

func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}
