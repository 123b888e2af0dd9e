package parameter

import "time"

// View
const (
	// FieldOfView is the vertical field of view in degrees
	FieldOfView = 60.0

	NearPlane = 0.1
	FarPlane  = 200.0

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// MinimapCellWidth is columns per grid cell on the minimap
	MinimapCellWidth = 2

	// OverviewCols and OverviewRows size the outside view panel; with
	// CellAspect 2 the sphere outline is round
	OverviewCols = 24
	OverviewRows = 12
)

// Loop
const (
	// FrameInterval is the redraw tick, about 60 FPS
	FrameInterval = 16 * time.Millisecond

	// EventBuffer is the input channel depth
	EventBuffer = 100
)
