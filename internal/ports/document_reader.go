package ports

// DocumentReader reads PRP documents from storage
type DocumentReader interface {
	// Exists reports whether anything exists at path
	Exists(path string) bool
	// Read returns the full text of the document at path
	Read(path string) (string, error)
}
