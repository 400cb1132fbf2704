package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIntro(t *testing.T) {
	descriptors := Intro()
	if len(descriptors) != 8 {
		t.Fatalf("expected 8 intro objects, got %d", len(descriptors))
	}

	var appear, bounce int
	for _, d := range descriptors {
		if d.Appear != nil {
			appear++
		}
		if d.Bounce != nil {
			bounce++
		}
	}
	if appear != 6 || bounce != 6 {
		t.Fatalf("expected 6 appear and 6 bounce animations, got %d and %d", appear, bounce)
	}

	keyhole := descriptors[0]
	if keyhole.Name != "keyhole" || keyhole.Kind != ExtrudedShape || keyhole.Extrude.Depth != 4 {
		t.Fatalf("unexpected keyhole %+v", keyhole)
	}
	if keyhole.Transform.Position.X == nil || *keyhole.Transform.Position.X != 1000 {
		t.Fatalf("expected keyhole x=1000")
	}
	if keyhole.Transform.Position.Z != nil {
		t.Fatalf("expected keyhole z to be left out")
	}
}

func TestBuiltinLantern(t *testing.T) {
	descriptors, err := Builtin("lantern")
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	lantern := descriptors[0]
	if lantern.Kind != ProceduralObject || len(lantern.Parts) != 6 {
		t.Fatalf("unexpected lantern %+v", lantern)
	}

	lamp := lantern.Parts[4]
	if lamp.Material == nil || lamp.Material.Color != "White" || lamp.Material.Roughness != 0.7 {
		t.Fatalf("expected the aliased lamp material, got %+v", lamp.Material)
	}
	resolved, err := lamp.Material.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Color != "#ffffff" || resolved.Emissive != "#052052" {
		t.Fatalf("unexpected resolved colours %+v", resolved)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown_kind", "objects:\n  - name: a\n    kind: hologram\n", ErrInvalidDescriptor},
		{"missing_extrude", "objects:\n  - name: a\n    kind: extruded\n", ErrInvalidDescriptor},
		{"unknown_field", "objects:\n  - name: a\n    kind: mesh\n    wobble: 1\n", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	data := []byte("objects:\n  - name: cube\n    kind: mesh\n    bounce: {amplitude: 2}\n")
	if err := os.WriteFile(scenePath, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cases := []struct {
		name      string
		ref       string
		wantFirst string
	}{
		{"default", "", "keyhole"},
		{"builtin", "lantern", "lantern"},
		{"file", scenePath, "cube"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			descriptors, err := Load(c.ref)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if descriptors[0].Name != c.wantFirst {
				t.Fatalf("expected %s first, got %s", c.wantFirst, descriptors[0].Name)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
