package picker

import "fmt"

// SignalKind says what a host has to refresh.
type SignalKind int

// Signals emitted by the engine.
const (
	// ReloadColumn asks the host to reload the rows of Column.
	ReloadColumn SignalKind = iota
	// ReloadAll asks the host to rebuild every column.
	ReloadAll
	// SelectionChanged asks the host to move Column to Row.
	SelectionChanged
)

// Signal is a single refresh request for the host.
type Signal struct {
	Kind   SignalKind
	Column int
	Row    int
}

func (s Signal) String() string {
	switch s.Kind {
	case ReloadColumn:
		return fmt.Sprintf("reload(%d)", s.Column)
	case ReloadAll:
		return "reload(all)"
	case SelectionChanged:
		return fmt.Sprintf("select(%d,%d)", s.Column, s.Row)
	}
	return "unknown"
}

// Observer receives signals as they are emitted, in order.
type Observer interface {
	ReloadColumn(column int)
	ReloadAll()
	SelectionChanged(column, row int)
}

func deliver(o Observer, signals []Signal) {
	if o == nil {
		return
	}
	for _, s := range signals {
		switch s.Kind {
		case ReloadColumn:
			o.ReloadColumn(s.Column)
		case ReloadAll:
			o.ReloadAll()
		case SelectionChanged:
			o.SelectionChanged(s.Column, s.Row)
		}
	}
}
