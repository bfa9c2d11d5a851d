package chainmap

// ConcurrentModification - Custom error used as panic value when a borrowing iterator is advanced after its table
// was structurally modified (a key was added or removed, the table grew or was drained)
type ConcurrentModification struct {
	msg string
}

// Error - Used to notify that the table changed under an iterator
func (C ConcurrentModification) Error() string {
	if C.msg == "" {
		return "table modified during iteration"
	}
	return C.msg
}

// StaleEntry - Custom error used as panic value when an Entry is used after it was consumed, or after its table
// was structurally modified
type StaleEntry struct {
	msg string
}

// Error - Used to notify that an entry can no longer be used
func (S StaleEntry) Error() string {
	if S.msg == "" {
		return "stale entry"
	}
	return S.msg
}
