package gmk

import (
	"fmt"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/gmk/io"

	"github.com/google/uuid"
)

// Section is the location of one top-level section in a project file.
type Section struct {
	Name   string
	Offset int
	Size   int
}

// Summary is the structure of a project file as read back by Inspect.
type Summary struct {
	Version  assets.Version
	GameID   uint32
	GUID     uuid.UUID
	Sections []Section
	// Asset names by list, with "" for empty slots
	Names         map[string][]string
	Constants     []string
	IncludedFiles []string
	Extensions    []string
	RoomOrder     []int32
	Tree          []Node
}

type inspector struct {
	data    io.Buffer
	size    int
	summary *Summary
}

func (r *inspector) offset() int {
	return r.size - len(r.data)
}

func (r *inspector) readUint() (uint32, error) {
	v, ok := r.data.GetUint()
	if !ok {
		return 0, io.ErrShort
	}
	return v, nil
}

// count reads an entry count. Every entry takes at least four bytes, so a
// count larger than what is left is rejected before anything is allocated.
func (r *inspector) count() (uint32, error) {
	n, err := r.readUint()
	if err != nil {
		return 0, err
	}
	if n > uint32(len(r.data)/4) {
		return 0, fmt.Errorf("%w: %d entries at offset %d", io.ErrShort, n, r.offset()-4)
	}
	return n, nil
}

func (r *inspector) expect(expected uint32) error {
	v, err := r.readUint()
	if err != nil {
		return err
	}
	if v != expected {
		return fmt.Errorf("expected %d at offset %d, found %d", expected, r.offset()-4, v)
	}
	return nil
}

func (r *inspector) readString() (string, error) {
	v, ok := r.data.GetString()
	if !ok {
		return "", io.ErrShort
	}
	return v, nil
}

func (r *inspector) skip(n int) error {
	if !r.data.Skip(n) {
		return io.ErrShort
	}
	return nil
}

func (r *inspector) header() error {
	err := r.expect(Magic)
	if err != nil {
		return err
	}

	version, err := r.readUint()
	if err != nil {
		return err
	}
	r.summary.Version = assets.Version(version)
	if !r.summary.Version.Valid() {
		return fmt.Errorf("unsupported format version %d", version)
	}

	r.summary.GameID, err = r.readUint()
	if err != nil {
		return err
	}

	guid, ok := r.data.GetBytes(16)
	if !ok {
		return io.ErrShort
	}
	copy(r.summary.GUID[:], guid)
	return nil
}

func (r *inspector) settings() error {
	err := r.expect(uint32(r.summary.Version))
	if err != nil {
		return err
	}
	_, err = r.data.GetBlock()
	return err
}

// assetList reads a resource list and records the name of every item. Named
// item bodies start with their name; triggers start with their version.
func (r *inspector) assetList(name string, versioned bool) error {
	err := r.expect(sectionVersion)
	if err != nil {
		return err
	}

	count, err := r.count()
	if err != nil {
		return err
	}

	names := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		exists, ok := r.data.GetBool()
		if !ok {
			return io.ErrShort
		}
		if !exists {
			names = append(names, "")
			continue
		}

		body, err := r.data.GetBlock()
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		if versioned {
			body.GetUint()
		}
		itemName, ok := body.GetString()
		if !ok {
			return fmt.Errorf("%s[%d]: %w", name, i, io.ErrShort)
		}
		names = append(names, itemName)
	}

	r.summary.Names[name] = names
	return nil
}

func (r *inspector) stamp() error {
	return r.skip(8)
}

func (r *inspector) constants() error {
	err := r.expect(sectionVersion)
	if err != nil {
		return err
	}

	count, err := r.count()
	if err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		name, err := r.readString()
		if err != nil {
			return err
		}
		_, err = r.readString()
		if err != nil {
			return err
		}
		r.summary.Constants = append(r.summary.Constants, name)
	}
	return r.stamp()
}

func (r *inspector) editorMetadata() error {
	return r.skip(8)
}

func (r *inspector) includedFiles() error {
	err := r.expect(sectionVersion)
	if err != nil {
		return err
	}

	count, err := r.count()
	if err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		body, err := r.data.GetBlock()
		if err != nil {
			return err
		}
		// last changed, version
		if !body.Skip(12) {
			return io.ErrShort
		}
		name, ok := body.GetString()
		if !ok {
			return io.ErrShort
		}
		r.summary.IncludedFiles = append(r.summary.IncludedFiles, name)
	}
	return nil
}

func (r *inspector) extensions() error {
	err := r.expect(extensionsVersion)
	if err != nil {
		return err
	}

	count, err := r.count()
	if err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		name, err := r.readString()
		if err != nil {
			return err
		}
		r.summary.Extensions = append(r.summary.Extensions, name)
	}
	return nil
}

func (r *inspector) gameInformation() error {
	err := r.expect(gameInfoVersion)
	if err != nil {
		return err
	}
	_, err = r.data.GetBlock()
	return err
}

func (r *inspector) libraryInit() error {
	err := r.expect(libraryInitVersion)
	if err != nil {
		return err
	}

	count, err := r.count()
	if err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		_, err = r.readString()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *inspector) roomOrder() error {
	err := r.expect(roomOrderVersion)
	if err != nil {
		return err
	}

	count, err := r.count()
	if err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		room, ok := r.data.GetInt()
		if !ok {
			return io.ErrShort
		}
		r.summary.RoomOrder = append(r.summary.RoomOrder, room)
	}
	return nil
}

func (r *inspector) node() (Node, error) {
	node := Node{}

	var status, kind, count uint32
	err := r.data.Get(&status, &kind, &node.Index)
	if err != nil {
		return node, io.ErrShort
	}
	node.Status = NodeStatus(status)
	node.Kind = ResourceKind(kind)

	node.Name, err = r.readString()
	if err != nil {
		return node, err
	}

	count, err = r.count()
	if err != nil {
		return node, err
	}

	for i := uint32(0); i < count; i++ {
		child, err := r.node()
		if err != nil {
			return node, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func (r *inspector) tree() error {
	for range treeGroups {
		node, err := r.node()
		if err != nil {
			return err
		}
		r.summary.Tree = append(r.summary.Tree, node)
	}
	return nil
}

// Inspect reads back the top-level structure of a project file written by
// Write.
func Inspect(data []byte) (*Summary, error) {
	r := &inspector{
		data: io.Buffer(data),
		size: len(data),
		summary: &Summary{
			Names: make(map[string][]string),
		},
	}

	list := func(name string) func() error {
		return func() error { return r.assetList(name, false) }
	}

	steps := []struct {
		name string
		read func() error
	}{
		{"header", r.header},
		{"settings", r.settings},
		{"triggers", func() error { return r.assetList("triggers", true) }},
		{"trigger timestamp", r.stamp},
		{"constants", r.constants},
		{"sounds", list("sounds")},
		{"sprites", list("sprites")},
		{"backgrounds", list("backgrounds")},
		{"paths", list("paths")},
		{"scripts", list("scripts")},
		{"fonts", list("fonts")},
		{"timelines", list("timelines")},
		{"objects", list("objects")},
		{"rooms", list("rooms")},
		{"room editor metadata", r.editorMetadata},
		{"included files", r.includedFiles},
		{"extensions", r.extensions},
		{"game information", r.gameInformation},
		{"library init code", r.libraryInit},
		{"room order", r.roomOrder},
		{"resource tree", r.tree},
	}

	for _, step := range steps {
		start := r.offset()
		err := step.read()
		if err != nil {
			return nil, fmt.Errorf("failed reading %s: %w", step.name, err)
		}
		r.summary.Sections = append(r.summary.Sections, Section{
			Name:   step.name,
			Offset: start,
			Size:   r.offset() - start,
		})
	}

	if len(r.data) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after resource tree", len(r.data))
	}

	return r.summary, nil
}
