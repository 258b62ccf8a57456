package pipeline

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/eunmann/zipflat/pkg/archive"
)

// levelRow and objectRow mirror the CSV columns in the parquet schema.
// Level stays a string so the missing-variable policy (empty value) carries
// over unchanged.
type levelRow struct {
	ID    string `parquet:"id"`
	Level string `parquet:"level"`
}

type objectRow struct {
	ID   string `parquet:"id"`
	Name string `parquet:"object_name"`
}

// parquetSink writes the two tables as parquet files.
type parquetSink struct {
	levelsFile  *os.File
	objectsFile *os.File
	levels      *parquet.GenericWriter[levelRow]
	objects     *parquet.GenericWriter[objectRow]
}

func newParquetSink(levelsPath, objectsPath string) (*parquetSink, error) {
	lf, err := os.Create(levelsPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", levelsPath, err)
	}
	of, err := os.Create(objectsPath)
	if err != nil {
		lf.Close()
		return nil, fmt.Errorf("create %s: %w", objectsPath, err)
	}

	return &parquetSink{
		levelsFile:  lf,
		objectsFile: of,
		levels:      parquet.NewGenericWriter[levelRow](lf),
		objects:     parquet.NewGenericWriter[objectRow](of),
	}, nil
}

func (s *parquetSink) WriteLevels(rows []archive.LevelRecord) error {
	if len(rows) == 0 {
		return nil
	}
	buf := make([]levelRow, len(rows))
	for i, r := range rows {
		buf[i] = levelRow{ID: r.DocID, Level: r.Level}
	}
	if _, err := s.levels.Write(buf); err != nil {
		return fmt.Errorf("write level rows: %w", err)
	}
	return nil
}

func (s *parquetSink) WriteObjects(rows []archive.ObjectRecord) error {
	if len(rows) == 0 {
		return nil
	}
	buf := make([]objectRow, len(rows))
	for i, r := range rows {
		buf[i] = objectRow{ID: r.DocID, Name: r.Name}
	}
	if _, err := s.objects.Write(buf); err != nil {
		return fmt.Errorf("write object rows: %w", err)
	}
	return nil
}

func (s *parquetSink) Close() error {
	err := s.levels.Close()
	if oerr := s.objects.Close(); err == nil {
		err = oerr
	}
	if cerr := s.levelsFile.Close(); err == nil {
		err = cerr
	}
	if cerr := s.objectsFile.Close(); err == nil {
		err = cerr
	}
	return err
}
