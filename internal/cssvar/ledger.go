package cssvar

// Ledger records, for the document being evaluated, which variable was
// declared with a given value. It only grows during a walk; a later
// declaration with the same value replaces the earlier name.
type Ledger struct {
	byValue map[string]string // "blue" -> "$brand"
}

// NewLedger returns an empty ledger
func NewLedger() *Ledger {
	return &Ledger{byValue: make(map[string]string)}
}

// Record stores property as the declaring variable for value
func (l *Ledger) Record(value, property string) {
	l.byValue[value] = property
}

// Lookup returns the variable recorded for an exact value match
func (l *Ledger) Lookup(value string) (string, bool) {
	name, ok := l.byValue[value]
	return name, ok
}

// Len returns the number of distinct recorded values
func (l *Ledger) Len() int {
	return len(l.byValue)
}
