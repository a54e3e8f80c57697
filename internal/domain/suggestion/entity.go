// internal/domain/suggestion/entity.go
package suggestion

// Result is the loosely-typed outcome of one image analysis call. Category,
// subcategory and condition arrive as free text and are only trusted after
// reconciliation against the catalog.
type Result struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Condition   string   `json:"condition"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
}

// State tracks the per-draft suggestion lifecycle. At most one suggestion is
// pending or ready at a time; a new analysis replaces a ready one.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateReady   State = "ready"
)

// Patch is the validated-category outcome of reconciling a Result. Category
// carries the canonical catalog id; Subcategory and Condition carry the raw
// suggested labels, still unvalidated against the catalog's subcategory list
// and the condition enumeration. Submit-time validation catches them.
type Patch struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Condition   string   `json:"condition"`
	Subcats     []string `json:"subcategory_options"`
}
