package gmk

import (
	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/gmk/io"

	"github.com/repeale/fp-go"
)

type NodeStatus uint32

const (
	StatusPrimary  NodeStatus = 1
	StatusGroup    NodeStatus = 2
	StatusResource NodeStatus = 3
)

type ResourceKind uint32

const (
	KindObjects         ResourceKind = 1
	KindSprites         ResourceKind = 2
	KindSounds          ResourceKind = 3
	KindRooms           ResourceKind = 4
	KindBackgrounds     ResourceKind = 6
	KindScripts         ResourceKind = 7
	KindPaths           ResourceKind = 8
	KindFonts           ResourceKind = 9
	KindGameInformation ResourceKind = 10
	KindGameSettings    ResourceKind = 11
	KindTimelines       ResourceKind = 12
	KindExtensions      ResourceKind = 13
)

// Node is an entry of the resource tree shown in the authoring tool's
// sidebar.
type Node struct {
	Status   NodeStatus
	Kind     ResourceKind
	Index    uint32
	Name     string
	Children []Node
}

func (n *Node) write(p *io.Buffer) error {
	err := p.Put(
		uint32(n.Status),
		uint32(n.Kind),
		n.Index,
		n.Name,
		uint32(len(n.Children)),
	)
	if err != nil {
		return err
	}

	for i := range n.Children {
		err = n.Children[i].write(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func resourceNodes(kind ResourceKind, category assets.Category) []Node {
	indices := make([]int, category.Len)
	for i := range indices {
		indices[i] = i
	}

	occupied := fp.Filter(category.Occupied)(indices)
	return fp.Map(func(i int) Node {
		name, _ := category.Name(i)
		return Node{
			Status: StatusResource,
			Kind:   kind,
			Index:  uint32(i),
			Name:   name,
		}
	})(occupied)
}

type treeGroup struct {
	Name     string
	Kind     ResourceKind
	Category string
}

var treeGroups = []treeGroup{
	{"Sprites", KindSprites, "sprite"},
	{"Sounds", KindSounds, "sound"},
	{"Backgrounds", KindBackgrounds, "background"},
	{"Paths", KindPaths, "path"},
	{"Scripts", KindScripts, "script"},
	{"Fonts", KindFonts, "font"},
	{"Time Lines", KindTimelines, "timeline"},
	{"Objects", KindObjects, "object"},
	{"Rooms", KindRooms, "room"},
	{"Game Information", KindGameInformation, ""},
	{"Global Game Settings", KindGameSettings, ""},
	{"Extension Packages", KindExtensions, ""},
}

// Tree builds the flat default resource tree: one primary group per
// resource kind holding every occupied slot in index order.
func Tree(g *assets.GameAssets) []Node {
	categories := make(map[string]assets.Category)
	for _, category := range g.Categories() {
		categories[category.Kind] = category
	}

	return fp.Map(func(group treeGroup) Node {
		node := Node{
			Status: StatusPrimary,
			Kind:   group.Kind,
			Name:   group.Name,
		}
		if category, ok := categories[group.Category]; ok {
			node.Children = resourceNodes(group.Kind, category)
		}
		return node
	})(treeGroups)
}
