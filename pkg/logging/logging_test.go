package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestInit_DoesNotPanic(t *testing.T) {
	Init(false, false)
	L().Info().Msg("test json info")

	Init(true, false)
	L().Debug().Msg("test json debug")

	Init(false, true)
	L().Info().Msg("test human info")

	if !IsPrettyMode() {
		t.Error("IsPrettyMode false after Init with human=true")
	}

	// Reset for other tests
	Init(false, false)
	if IsPrettyMode() {
		t.Error("IsPrettyMode true after Init with human=false")
	}
}

func TestWithPhase(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	log := WithPhase("test_phase")
	log.Info().Msg("test message")

	if !bytes.Contains(buf.Bytes(), []byte(`"phase":"test_phase"`)) {
		t.Errorf("expected phase field in output, got: %s", buf.String())
	}
}

func TestPhaseComplete(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	PhaseComplete(log, "generate", 1500*time.Millisecond).
		Int("archives", 3).
		Count("documents", 15).
		Log("generation complete")

	out := buf.String()
	for _, want := range []string{
		`"event":"phase_completed"`,
		`"phase":"generate"`,
		`"duration_ms":1500`,
		`"archives":3`,
		`"documents":15`,
	} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestArchiveCompleteDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	ArchiveComplete(log, "flatten", time.Millisecond).
		Str("archive", "test_0.zip").
		LogDebug("archive flattened")

	if buf.Len() != 0 {
		t.Errorf("debug event emitted at info level: %s", buf.String())
	}
}
