package testutil

// DefaultRunID is used when a scenario does not name its run.
const DefaultRunID = "test-run-default"

// FixedRunID hands out the same run id on every call so repeated runs of a
// scenario produce byte-identical reports.
//
// Thread-safety: FixedRunID is immutable and safe for concurrent use.
type FixedRunID struct {
	id string
}

// NewFixedRunID returns a generator for id, or for DefaultRunID when id is
// empty.
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunID{id: id}
}

// Generate implements engine.RunIDGenerator.
func (g *FixedRunID) Generate() string {
	return g.id
}
