package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/eunmann/zipflat/pkg/archive"
)

// csvSink appends rows to two comma-delimited files, each with a one-line
// header.
type csvSink struct {
	levelsFile  *os.File
	objectsFile *os.File
	levels      *csv.Writer
	objects     *csv.Writer
}

func newCSVSink(levelsPath, objectsPath string) (*csvSink, error) {
	lf, err := os.Create(levelsPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", levelsPath, err)
	}
	of, err := os.Create(objectsPath)
	if err != nil {
		lf.Close()
		return nil, fmt.Errorf("create %s: %w", objectsPath, err)
	}

	s := &csvSink{
		levelsFile:  lf,
		objectsFile: of,
		levels:      csv.NewWriter(lf),
		objects:     csv.NewWriter(of),
	}

	if err := s.levels.Write([]string{"id", "level"}); err != nil {
		s.Close()
		return nil, fmt.Errorf("write levels header: %w", err)
	}
	if err := s.objects.Write([]string{"id", "object_name"}); err != nil {
		s.Close()
		return nil, fmt.Errorf("write objects header: %w", err)
	}
	return s, nil
}

func (s *csvSink) WriteLevels(rows []archive.LevelRecord) error {
	for _, r := range rows {
		if err := s.levels.Write([]string{r.DocID, r.Level}); err != nil {
			return fmt.Errorf("write level row: %w", err)
		}
	}
	return nil
}

func (s *csvSink) WriteObjects(rows []archive.ObjectRecord) error {
	for _, r := range rows {
		if err := s.objects.Write([]string{r.DocID, r.Name}); err != nil {
			return fmt.Errorf("write object row: %w", err)
		}
	}
	return nil
}

func (s *csvSink) Close() error {
	s.levels.Flush()
	s.objects.Flush()

	err := s.levels.Error()
	if werr := s.objects.Error(); err == nil {
		err = werr
	}
	if cerr := s.levelsFile.Close(); err == nil {
		err = cerr
	}
	if cerr := s.objectsFile.Close(); err == nil {
		err = cerr
	}
	return err
}
