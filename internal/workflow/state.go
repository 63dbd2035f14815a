package workflow

type State int

const (
	StateOpen State = iota
	StateSubmitted
	StateValidated
	StateRejected
	StatePersisted
	StatePersistFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateSubmitted:
		return "submitted"
	case StateValidated:
		return "validated"
	case StateRejected:
		return "rejected"
	case StatePersisted:
		return "persisted"
	case StatePersistFailed:
		return "persist_failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Kind tags the dialog specialisations.
type Kind int

const (
	KindAddPart Kind = iota + 1
	KindEditPart
	KindAddModule
	KindAddSupplier
)

func (k Kind) String() string {
	switch k {
	case KindAddPart:
		return "add-part"
	case KindEditPart:
		return "edit-part"
	case KindAddModule:
		return "add-module"
	case KindAddSupplier:
		return "add-supplier"
	default:
		return "unknown"
	}
}

func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindAddPart, KindEditPart, KindAddModule, KindAddSupplier} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
