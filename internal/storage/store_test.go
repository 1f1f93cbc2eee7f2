package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/wavesim/internal/runner"
	"github.com/san-kum/wavesim/internal/wave"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		States: []wave.Field{
			{0, 1.0, 0},
			{0, -1.0, 0.5},
		},
		Times: []float64{0, 1.0 / 60},
		Metrics: map[string]float64{
			"peak_amplitude": 1.0,
		},
		StepsTaken: 1,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(1, 60, 1, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", meta.Frames)
	}
	if meta.FPS != 60 {
		t.Errorf("expected fps 60, got %f", meta.FPS)
	}
	if meta.Metrics["peak_amplitude"] != 1.0 {
		t.Errorf("expected peak 1.0, got %f", meta.Metrics["peak_amplitude"])
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}

	if len(states) != 2 {
		t.Errorf("expected 2 states, got %d", len(states))
	}
	if len(times) != 2 {
		t.Errorf("expected 2 times, got %d", len(times))
	}
	if len(states[0]) != 3 {
		t.Errorf("expected 3 samples per state, got %d", len(states[0]))
	}
	if states[1][1] != -1.0 {
		t.Errorf("expected u1 = -1.0, got %f", states[1][1])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(1, 60, 1, sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(1, 60, 1, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "states.csv")); os.IsNotExist(err) {
		t.Error("states.csv not created")
	}
}
