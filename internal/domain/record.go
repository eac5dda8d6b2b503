package domain

// State is the publishing state of a content record.
type State int

// Publishing states understood by the content model.
const (
	StateTrashed     State = -2
	StateUnpublished State = 0
	StatePublished   State = 1
	StateArchived    State = 2
)

// StatePtr returns a pointer to s, for optional State fields.
func StatePtr(s State) *State { return &s }

// Record holds the columns shared by categories, articles and menu items.
type Record struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Alias         string           `json:"alias"`
	Access        int              `json:"access"`
	State         *State           `json:"state,omitempty"`
	Language      string           `json:"language"`
	Associations  map[string]int64 `json:"associations,omitempty"`
	Metakey       string           `json:"metakey"`
	Metadesc      string           `json:"metadesc"`
	XReference    string           `json:"xreference"`
	Params        map[string]any   `json:"params"`
	CreatedUserID int64            `json:"createdUserId"`
	CreatedAt     string           `json:"createdAt,omitempty"`
}

// Published reports whether the record is in the published state.
func (r *Record) Published() bool {
	return r.State != nil && *r.State == StatePublished
}
