package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/widget"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "VESSEL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree and the last frame's commands.
type Snapshot struct {
	Tree     *Node    `json:"tree"`
	Commands []string `json:"commands,omitempty"`
}

// Node is one widget in a serialized tree. IDs count per type, so they do
// not change when unrelated widgets are allocated.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Size     [2]float64     `json:"size"`
	Offset   [2]float64     `json:"offset"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// CaptureSnapshot captures the current tree and the last rendered frame.
func (t *AppTester[M]) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	tree := t.driver.Tree()
	if root := tree.Root(); root.Valid() {
		snap.Tree = captureNode(tree, root, &typeCounter{})
	}
	if f, ok := t.renderer.Last(); ok {
		var b strings.Builder
		if err := render.Dump(&b, render.Flatten(f.Groups)); err == nil {
			snap.Commands = strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		}
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When VESSEL_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a diff from other to s, or "" when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

// typeCounter assigns stable IDs like "Flex#0", "Flex#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(tree *widget.Tree, w id.WidgetID, counter *typeCounter) *Node {
	d := tree.Get(w)
	typeName := typeNameOf(d.Widget)
	node := &Node{
		ID:     counter.next(typeName),
		Type:   typeName,
		Size:   [2]float64{round2(d.Size.Width), round2(d.Size.Height)},
		Offset: [2]float64{round2(d.Position.X), round2(d.Position.Y)},
		Props:  captureProps(d.Widget),
	}
	for _, c := range d.Children {
		node.Children = append(node.Children, captureNode(tree, c, counter))
	}
	return node
}

func typeNameOf(w widget.Widget) string {
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func captureProps(w widget.Widget) map[string]any {
	props := make(map[string]any)
	switch w := w.(type) {
	case *widget.Text:
		props["text"] = w.Content
	case *widget.Flex:
		props["axis"] = w.Axis.String()
		props["spacing"] = round2(w.Spacing)
	case *widget.Bar:
		props["height"] = round2(w.Height)
	case *widget.Button:
		props["message"] = fmt.Sprint(w.Message)
	case *widget.Container:
		props["padding"] = fmt.Sprint(w.Padding)
		props["color"] = fmt.Sprintf("%08x", uint32(w.Background))
	case *widget.Slider:
		props["value"] = round2(w.Value)
	case *widget.Window:
		props["title"] = w.Title
		props["maximized"] = w.Maximized
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
