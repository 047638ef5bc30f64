// Package note holds the reference-note value object passed through from the
// note vault.
package note

// Note is one reference note: vault-relative path plus file content.
type Note struct {
	Path    string
	Content string
}
