package browse

// TablePhase is the single state a table renders at any moment.
type TablePhase int

const (
	TableOK TablePhase = iota
	TableLoading
	TableError
	TableEmpty
)

// TableState is the resolved display state: which phase the table is in and
// the message to show for error and empty phases.
type TableState struct {
	Phase   TablePhase
	Message string
}

// TableStateInput carries everything the resolver needs. The search fields
// take precedence over the list fields whenever a search is active, so a
// stale list error never shows through an in-progress search and vice versa.
type TableStateInput struct {
	Searching   bool
	SearchBusy  bool
	SearchErr   error
	SearchEmpty bool

	ListBusy  bool
	ListErr   error
	ListEmpty bool

	// Optional message overrides; the defaults are used when empty.
	NoMatchMessage string
	NoDataMessage  string
}

const (
	defaultNoMatch = "No matching items"
	defaultNoData  = "No data"
)

// ResolveTableState collapses the search and list states into one phase.
func ResolveTableState(in TableStateInput) TableState {
	if in.Searching {
		switch {
		case in.SearchBusy:
			return TableState{Phase: TableLoading}
		case in.SearchErr != nil:
			return TableState{Phase: TableError, Message: in.SearchErr.Error()}
		case in.SearchEmpty:
			return TableState{Phase: TableEmpty, Message: orDefault(in.NoMatchMessage, defaultNoMatch)}
		}
		return TableState{Phase: TableOK}
	}

	switch {
	case in.ListBusy:
		return TableState{Phase: TableLoading}
	case in.ListErr != nil:
		return TableState{Phase: TableError, Message: in.ListErr.Error()}
	case in.ListEmpty:
		return TableState{Phase: TableEmpty, Message: orDefault(in.NoDataMessage, defaultNoData)}
	}
	return TableState{Phase: TableOK}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
