package assets

import (
	"github.com/repeale/fp-go/option"
)

// A Slot is one position in a resource list. An empty slot is a deleted
// resource whose id stays reserved.
type Slot[T any] opt.Option[*T]

func Occupied[T any](value *T) Slot[T] {
	if value == nil {
		return Empty[T]()
	}
	return Slot[T](opt.Some(value))
}

func Empty[T any]() Slot[T] {
	return Slot[T](opt.None[*T]())
}

func (s Slot[T]) IsEmpty() bool {
	return opt.IsNone(opt.Option[*T](s))
}

// Get returns the slot's asset, or nil for an empty slot.
func (s Slot[T]) Get() *T {
	if s.IsEmpty() {
		return nil
	}
	return s.Value
}

const (
	NumActionParams = 8
	NumEventTypes   = 12
)

const (
	ActionKindCode     uint32 = 7
	ExecutionNone      uint32 = 0
	ExecutionFunction  uint32 = 1
	ExecutionCode      uint32 = 2
	ActionExecuteCode  uint32 = 603
	LibraryMainActions uint32 = 1
)

const (
	ParamTypeExpression uint32 = iota
	ParamTypeString
	ParamTypeBoth
)

// CodeAction is a drag-and-drop action attached to an object event or a
// timeline moment.
type CodeAction struct {
	ID                 uint32
	LibID              uint32
	ActionKind         uint32
	ExecutionType      uint32
	CanBeRelative      uint32
	AppliesTo          int32
	IsCondition        bool
	InvertCondition    bool
	IsRelative         bool
	AppliesToSomething bool
	FnName             string
	FnCode             string
	ParamCount         uint32
	ParamTypes         [NumActionParams]uint32
	ParamStrings       [NumActionParams]string
}

type Trigger struct {
	Name         string
	Condition    string
	Moment       uint32
	ConstantName string
}

type Constant struct {
	Name       string
	Expression string
}

type Sound struct {
	Name      string
	Kind      uint32
	Extension string
	Source    string
	// nil when the sound has no embedded file
	Data    []byte
	Effects uint32
	Volume  float64
	Pan     float64
	Preload bool
}

type Frame struct {
	Width  uint32
	Height uint32
	// BGRA pixels, written as an opaque blob
	Data []byte
}

type BoundingBox struct {
	Left   int32
	Right  int32
	Bottom int32
	Top    int32
}

type Sprite struct {
	Name              string
	OriginX           int32
	OriginY           int32
	Frames            []Frame
	MaskShape         uint32
	AlphaTolerance    uint32
	PerFrameColliders bool
	BBoxMode          uint32
	BBox              BoundingBox
}

type Background struct {
	Name       string
	Width      uint32
	Height     uint32
	Data       []byte
	IsTileset  bool
	TileWidth  uint32
	TileHeight uint32
	HOffset    uint32
	VOffset    uint32
	HSep       uint32
	VSep       uint32
}

type PathPoint struct {
	X     float64
	Y     float64
	Speed float64
}

type Path struct {
	Name      string
	Kind      uint32
	Closed    bool
	Precision uint32
	Points    []PathPoint
}

type Script struct {
	Name   string
	Source string
}

type Font struct {
	Name       string
	SysName    string
	Size       uint32
	Bold       bool
	Italic     bool
	RangeStart uint32
	RangeEnd   uint32
	Charset    uint32
	AALevel    uint32
}

type Moment struct {
	Position uint32
	Actions  []CodeAction
}

type Timeline struct {
	Name    string
	Moments []Moment
}

// Event is one sub-event (e.g. a specific alarm or key) of an object.
type Event struct {
	Sub     uint32
	Actions []CodeAction
}

type Object struct {
	Name        string
	SpriteIndex int32
	Solid       bool
	Visible     bool
	Depth       int32
	Persistent  bool
	ParentIndex int32
	MaskIndex   int32
	// indexed by event type (create, destroy, alarm, ...)
	Events [][]Event
}

type RoomBackground struct {
	Visible    bool
	Foreground bool
	Source     int32
	X          int32
	Y          int32
	TileH      bool
	TileV      bool
	HSpeed     int32
	VSpeed     int32
	Stretch    bool
}

type View struct {
	Visible bool
	ViewX   int32
	ViewY   int32
	ViewW   uint32
	ViewH   uint32
	PortX   int32
	PortY   int32
	PortW   uint32
	PortH   uint32
	HBorder uint32
	VBorder uint32
	HSpeed  int32
	VSpeed  int32
	Target  int32
}

type Instance struct {
	X            int32
	Y            int32
	Object       int32
	ID           int32
	CreationCode string
}

type Tile struct {
	X          int32
	Y          int32
	Background int32
	TileX      uint32
	TileY      uint32
	Width      uint32
	Height     uint32
	Depth      int32
	ID         int32
}

type Room struct {
	Name         string
	Caption      string
	Width        uint32
	Height       uint32
	Speed        uint32
	Persistent   bool
	BgColour     uint32
	ClearScreen  bool
	CreationCode string
	Backgrounds  []RoomBackground
	ViewsEnabled bool
	Views        []View
	Instances    []Instance
	Tiles        []Tile
}

type ExportKind uint32

const (
	ExportNone ExportKind = iota
	ExportTempFolder
	ExportGameFolder
	ExportCustomFolder
)

type ExportSetting struct {
	Kind ExportKind
	// only used by ExportCustomFolder
	Folder string
}

type IncludedFile struct {
	FileName     string
	SourcePath   string
	DataExists   bool
	SourceLength uint32
	StoredInGmk  bool
	Data         []byte
	Export       ExportSetting
	Overwrite    bool
	FreeMemory   bool
	RemoveAtEnd  bool
}

// Extension is a reference to an extension package by name. The package
// itself is not part of the project file.
type Extension struct {
	Name string
}

type GameInformation struct {
	BgColour   uint32
	NewWindow  bool
	Caption    string
	Left       int32
	Top        int32
	Width      uint32
	Height     uint32
	Border     bool
	Resizable  bool
	OnTop      bool
	FreezeGame bool
	Info       string
}

type Settings struct {
	Fullscreen         bool
	InterpolatePixels  bool
	DontDrawBorder     bool
	DisplayCursor      bool
	Scaling            int32
	AllowResize        bool
	WindowOnTop        bool
	ClearColour        uint32
	SetResolution      bool
	ColourDepth        uint32
	Resolution         uint32
	Frequency          uint32
	DontShowButtons    bool
	VSync              bool
	ForceCPURender     bool
	DisableScreensaver bool
	F4FullscreenToggle bool
	F1HelpMenu         bool
	EscCloseGame       bool
	F5SaveF6Load       bool
	F9Screenshot       bool
	TreatCloseAsEsc    bool
	Priority           uint32
	FreezeOnLoseFocus  bool
	LoadingBar         uint32
	// only written when LoadingBar is LoadingBarCustom
	LoadingBackground []byte
	LoadingForeground []byte
	CustomLoadImage   []byte
	Transparent       bool
	Translucency      uint32
	ScaleProgressBar  bool
	ShowErrors        bool
	LogErrors         bool
	AlwaysAbort       bool
	ZeroUninitialized bool
	ErrorOnArgs       bool
	Author            string
	VersionString     string
	Information       string
	Major             uint32
	Minor             uint32
	Release           uint32
	Build             uint32
	Company           string
	Product           string
	Copyright         string
	Description       string
}

const LoadingBarCustom uint32 = 2
