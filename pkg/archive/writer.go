package archive

import (
	"archive/zip"
	"fmt"
	"os"

	"github.com/eunmann/zipflat/pkg/docgen"
	"github.com/eunmann/zipflat/pkg/fileutil"
)

// Write generates docQty documents and persists them as one
// deflate-compressed zip at path. Entry names are {xmlPrefix}{0..docQty-1}.xml.
// The container is written via tmp+rename, so an existing archive at path is
// replaced whole rather than observed half-written.
func Write(path, xmlPrefix string, docQty int, gen *docgen.Generator) error {
	return fileutil.WriteTmpThenMove(path, func(tmpPath string) error {
		f, err := os.Create(tmpPath)
		if err != nil {
			return fmt.Errorf("create archive: %w", err)
		}

		zw := zip.NewWriter(f)
		for i := 0; i < docQty; i++ {
			w, err := zw.Create(fmt.Sprintf("%s%d.xml", xmlPrefix, i))
			if err != nil {
				f.Close()
				return fmt.Errorf("create entry %d: %w", i, err)
			}
			doc, err := gen.MarshalDocument()
			if err != nil {
				f.Close()
				return fmt.Errorf("marshal document %d: %w", i, err)
			}
			if _, err := w.Write(doc); err != nil {
				f.Close()
				return fmt.Errorf("write entry %d: %w", i, err)
			}
		}

		if err := zw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("finalize archive: %w", err)
		}
		return f.Close()
	})
}
