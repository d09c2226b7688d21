package checkpoint

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

func openStore(t *testing.T) Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "cp", "checkpoints.bolt"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBeginAppendLoad(t *testing.T) {
	s := openStore(t)

	id, err := s.Begin(Run{
		Source: "/data/aula.pdf",
		Meta:   models.RunMeta{SourceName: "aula.pdf", StartPage: 9, EndPage: 11, TotalMinutes: 10},
		Plan:   models.TimePlan{Slides: []models.SlideTime{{SlideNum: 9, Seconds: 200}}},
		Pages:  []string{"a", "b", "c"},
	})
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if id == "" {
		t.Fatal("Begin() returned empty id")
	}

	// out of order on purpose; Load must return slide order
	if err := s.Append(id, 10, "dez"); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(id, 9, "nove"); err != nil {
		t.Fatal(err)
	}

	run, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if run.Meta.StartPage != 9 || len(run.Pages) != 3 || run.Plan.Seconds(9, 0) != 200 {
		t.Errorf("run = %+v", run)
	}
	if len(run.Scripts) != 2 || run.Scripts[0].Slide != 9 || run.Scripts[1].Text != "dez" {
		t.Errorf("Scripts = %+v", run.Scripts)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestAppendUnknownRun(t *testing.T) {
	s := openStore(t)
	if err := s.Append("missing", 1, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Append() error = %v, want ErrNotFound", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openStore(t)

	a, _ := s.Begin(Run{Source: "a.pdf"})
	b, _ := s.Begin(Run{Source: "b.pdf"})
	_ = s.Append(b, 1, "x")

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(runs))
	}

	if err := s.Delete(a); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Load(a); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() after delete error = %v", err)
	}

	runs, _ = s.List()
	if len(runs) != 1 || runs[0].ID != b || len(runs[0].Scripts) != 1 {
		t.Errorf("List() = %+v", runs)
	}
}
