package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/input"
	"github.com/vovakirdan/tui-engine/internal/stage"
)

type fakeDemo struct {
	id    string
	title string
}

func (d *fakeDemo) ID() string    { return d.id }
func (d *fakeDemo) Title() string { return d.title }

func (d *fakeDemo) Install(st *stage.Stage, cfg config.RuntimeConfig, in *input.Frame) (stage.State, error) {
	return stage.StateMenu, nil
}

func (d *fakeDemo) Score() int { return 0 }

func register(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Demo { return &fakeDemo{id: id, title: title} })
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, id)
		delete(titles, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "orbit", "Orbit Demo")

	if !Exists("orbit") {
		t.Fatal("registered demo should exist")
	}

	d, err := Create("orbit")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if d.ID() != "orbit" || d.Title() != "Orbit Demo" {
		t.Errorf("demo = %s/%s, want orbit/Orbit Demo", d.ID(), d.Title())
	}

	// Each Create returns a fresh instance
	d2, _ := Create("orbit")
	if d == d2 {
		t.Error("Create should instantiate a new demo each time")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-demo")
	if err == nil {
		t.Fatal("creating an unregistered demo should fail")
	}
	if !strings.Contains(err.Error(), `unknown demo "no-such-demo"`) {
		t.Errorf("error = %q, want unknown demo", err)
	}
}

func TestExistsUnknown(t *testing.T) {
	if Exists("no-such-demo") {
		t.Error("Exists should be false for unregistered IDs")
	}
}

func TestListSorted(t *testing.T) {
	register(t, "zeta", "Zeta")
	register(t, "alpha", "Alpha")

	list := List()

	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	// The full list may contain demos registered via init; check relative
	// order and titles of ours.
	zi, ai := -1, -1
	for i, id := range ids {
		switch id {
		case "zeta":
			zi = i
		case "alpha":
			ai = i
		}
	}
	if ai == -1 || zi == -1 {
		t.Fatalf("list = %v, missing registered demos", ids)
	}
	if ai > zi {
		t.Errorf("list = %v, want alpha before zeta", ids)
	}
	if list[ai].Title != "Alpha" {
		t.Errorf("alpha title = %q", list[ai].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("dup", func() Demo { return &fakeDemo{id: "dup", title: "Dup"} })
}
