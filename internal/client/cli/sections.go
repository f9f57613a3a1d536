package cli

// Section identifies one of the four main views.
type Section string

const (
	SectionDashboard   Section = "dashboard"
	SectionRubrics     Section = "rubrics"
	SectionEvaluations Section = "evaluations"
	SectionAnalytics   Section = "analytics"
)

var allSections = []Section{
	SectionDashboard,
	SectionRubrics,
	SectionEvaluations,
	SectionAnalytics,
}

// ViewState is the navigation state machine. Exactly one section is visible
// at any time; switching hides everything else and marks the target active.
// Any section is reachable from any other.
type ViewState struct {
	visible map[Section]bool
	active  Section
}

// NewViewState starts on the dashboard.
func NewViewState() *ViewState {
	v := &ViewState{visible: make(map[Section]bool, len(allSections))}
	v.Activate(SectionDashboard)
	return v
}

// Activate makes s the single visible section.
func (v *ViewState) Activate(s Section) {
	for _, sec := range allSections {
		v.visible[sec] = false
	}
	v.visible[s] = true
	v.active = s
}

// Active returns the currently visible section.
func (v *ViewState) Active() Section { return v.active }

// Visible reports whether s is shown.
func (v *ViewState) Visible(s Section) bool { return v.visible[s] }

// VisibleCount counts shown sections. It is 1 after any Activate.
func (v *ViewState) VisibleCount() int {
	n := 0
	for _, shown := range v.visible {
		if shown {
			n++
		}
	}
	return n
}
