package listfile

// Entry is one stored RFID identifier with its free-text label.
type Entry struct {
	// ID is the 32-bit RFID tag code
	ID uint32

	// Label is the human-readable description (card holder, room, ...)
	Label string
}

// List is a parsed identifier list, in file order.
type List struct {
	Entries []*Entry
}

// IDs returns the identifiers in list order, ready for upload.
func (l *List) IDs() []uint32 {
	ids := make([]uint32, len(l.Entries))
	for i, e := range l.Entries {
		ids[i] = e.ID
	}
	return ids
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.Entries)
}
