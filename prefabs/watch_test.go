package prefabs

import (
	"testing"
	"time"
)

func TestBase(t *testing.T) {
	cases := map[string]string{
		"prefabs/scene.yaml":           "scene.yaml",
		"/tmp/x/pet.yaml":              "pet.yaml",
		"prefabs/scripts/pet.tengo":    "scripts/pet.tengo",
		"/abs/prefabs/scripts/a.tengo": "scripts/a.tengo",
	}
	for in, want := range cases {
		if got := Base(in); got != want {
			t.Errorf("Base(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "scene.yaml", "name: x\n")

	select {
	case c := <-w.Events:
		if c.Name != "scene.yaml" || c.Kind != ChangeSpec {
			t.Fatalf("change = %+v", c)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherPendingDedups(t *testing.T) {
	w := &Watcher{Events: make(chan Change, 4)}
	w.Events <- Change{Name: "pet.yaml"}
	w.Events <- Change{Name: "scripts/pet.tengo", Kind: ChangeScript}
	w.Events <- Change{Name: "pet.yaml"}

	got := w.Pending()
	if len(got) != 2 || got[0].Name != "pet.yaml" || got[1].Kind != ChangeScript {
		t.Fatalf("pending = %+v", got)
	}
	if len(w.Pending()) != 0 {
		t.Fatal("pending should be drained")
	}
}
