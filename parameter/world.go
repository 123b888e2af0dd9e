package parameter

// World Geometry
const (
	// WorldResolution is cells per face edge
	WorldResolution = 10

	// WorldRadius is the outer sphere radius
	WorldRadius = 40.0

	// WallDepth is how far walls reach inward from the surface
	WallDepth = 3.0

	// AnchorHeight places the observer's body above the floor at the south pole
	AnchorHeight = 1.5

	// EyeHeight places the camera above the floor
	EyeHeight = 3.0

	// MinResolution and MaxResolution bound accepted face sizes
	MinResolution = 2
	MaxResolution = 64
)

// Movement
const (
	// StepDegrees is the world rotation per walking step
	StepDegrees = 1.5

	// LookStep is radians per look command
	LookStep = 0.05

	// PitchLimit clamps pitch in radians
	PitchLimit = 1.5

	// RenormalizeEvery re-orthonormalizes the frame after K commits, 0 never
	RenormalizeEvery = 0
)

// Collision
const (
	CollisionThreshold = 2.5
	SmartWalls         = true
)

// Items
const (
	// InteractThreshold is the pickup reach from the anchor
	InteractThreshold = 4.0
)

// Generation
const (
	MazeBraiding = 0.2
)

// Decorative models
const (
	// MaxModelVertices and MaxModelFaces bound the counts a model file may declare
	MaxModelVertices = 1 << 16
	MaxModelFaces    = 1 << 17
)
