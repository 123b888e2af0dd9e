package asset

// DefaultConfig is the documented settings file, identical in effect to the
// built-in defaults. cmd/cubeworld writes it with -write-config.
const DefaultConfig = `# cubeworld settings

[world]
resolution = 10       # cells per face edge, 2-64
radius = 40.0         # sphere radius
wall_depth = 3.0      # how far walls reach inward
anchor_height = 1.5   # observer body above the floor
eye_height = 3.0      # camera above the floor

[movement]
step_degrees = 1.5    # world rotation per step
look_step = 0.05      # radians per look key
pitch_limit = 1.5     # radians
renormalize_every = 0 # re-orthonormalize after this many moves, 0 never

[collision]
threshold = 2.5
smart_walls = true    # probe wall strips between neighbouring walls

[items]
interact_threshold = 4.0
model = ""            # item model file, empty for the built-in gem

[maps]
dir = "maps"

[maps.faces.front]
file = "map_front.csv"
rotation = 180

[maps.faces.back]
file = "map_back.csv"
rotation = 0

[maps.faces.right]
file = "map_right.csv"
rotation = 90

[maps.faces.left]
file = "map_left.csv"
rotation = -90

[maps.faces.top]
file = "map_top.csv"
rotation = 0

[maps.faces.bottom]
file = "map_bottom.csv"
rotation = 0

[generate]
enabled = false       # true ignores map files; generation also runs when none are found
seed = 0              # 0 picks a time based seed
braiding = 0.2        # share of dead ends opened into loops
items = true          # one item per face at its farthest passage

[audio]
enabled = true
master_volume = 0.5
sample_rate = 44100

[audio.volumes]
bump = 0.8
chime = 1.0
fanfare = 0.7
step = 0.2

[keys]
# key = "command", e.g.
# i = "forward"
# space = "none"
`
