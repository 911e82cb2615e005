package asset

// Entry is one discovered asset file: a stable id (path relative to the
// asset root with the extension stripped), the URL it resolves to, and
// its category. Entries are built once during the manifest scan and are
// immutable afterwards.
type Entry struct {
	ID       string
	URL      string
	Category Category
}
