package models

// Rect is a rectangle on the floor map, in terminal cells
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Position is where the status button is drawn on the floor map
type Position struct {
	X, Y int
}

// MapRegion is one room outline on the floor map
type MapRegion struct {
	RoomID string
	Label  string
	Bounds Rect
}

const (
	MapWidth  = 38
	MapHeight = 10
)

// MapRegions is the fixed floor plan. Order is the focus order on the map.
var MapRegions = []MapRegion{
	{RoomID: "bedroom", Label: "Bedroom", Bounds: Rect{X: 0, Y: 0, W: 14, H: 5}},
	{RoomID: "bathroom", Label: "Bath", Bounds: Rect{X: 14, Y: 0, W: 10, H: 5}},
	{RoomID: "office", Label: "Office", Bounds: Rect{X: 24, Y: 0, W: 14, H: 5}},
	{RoomID: "livingroom", Label: "Living room", Bounds: Rect{X: 0, Y: 5, W: 24, H: 5}},
	{RoomID: "kitchen", Label: "Kitchen", Bounds: Rect{X: 24, Y: 5, W: 14, H: 5}},
}

var buttonPositions = map[string]Position{
	"bedroom":    {X: 3, Y: 3},
	"bathroom":   {X: 16, Y: 3},
	"office":     {X: 27, Y: 3},
	"livingroom": {X: 3, Y: 8},
	"kitchen":    {X: 27, Y: 8},
}

// ButtonPosition returns where the status button goes for a room.
// Rooms without a position get no button.
func ButtonPosition(roomID string) (Position, bool) {
	pos, ok := buttonPositions[roomID]
	return pos, ok
}

// RegionFor returns the map region of a room
func RegionFor(roomID string) (MapRegion, bool) {
	for _, r := range MapRegions {
		if r.RoomID == roomID {
			return r, true
		}
	}
	return MapRegion{}, false
}
