package archive

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/eunmann/zipflat/pkg/docgen"
)

// Read opens the archive at path and flattens every contained document into
// one LevelRecord plus one ObjectRecord per object child. Entries whose name
// does not end in .xml are skipped. A document missing its id or level
// variable still yields a level row with the value left empty; a malformed
// container or document fails the whole archive.
func Read(path string) ([]LevelRecord, []ObjectRecord, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	var levels []LevelRecord
	var objects []ObjectRecord

	for _, entry := range zr.File {
		if !strings.HasSuffix(entry.Name, ".xml") {
			continue
		}

		doc, err := decodeEntry(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %s: %w", entry.Name, err)
		}

		id, _ := doc.Var("id")
		level, _ := doc.Var("level")
		levels = append(levels, LevelRecord{DocID: id, Level: level})

		for _, obj := range doc.Objects.Objects {
			objects = append(objects, ObjectRecord{DocID: id, Name: obj.Name})
		}
	}

	return levels, objects, nil
}

func decodeEntry(entry *zip.File) (docgen.Document, error) {
	rc, err := entry.Open()
	if err != nil {
		return docgen.Document{}, fmt.Errorf("open entry: %w", err)
	}
	defer rc.Close()

	var doc docgen.Document
	if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
		return docgen.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
