// Package archive writes and reads the zip containers holding generated
// documents, flattening their contents into tabular records.
package archive

// LevelRecord is the flattened (document id, level) row for the levels table.
type LevelRecord struct {
	DocID string
	Level string
}

// ObjectRecord is the flattened (document id, object name) row for the
// objects table. A document contributes one per object child.
type ObjectRecord struct {
	DocID string
	Name  string
}
