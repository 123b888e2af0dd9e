package asset

// GemModel is the built-in item model, an octahedron with 1-based indices
const GemModel = `VERTEX = 6
 0.0  1.0  0.0
 0.0 -1.0  0.0
 1.0  0.0  0.0
-1.0  0.0  0.0
 0.0  0.0  1.0
 0.0  0.0 -1.0
FACE = 8
1 5 3
1 3 6
1 6 4
1 4 5
2 3 5
2 6 3
2 4 6
2 5 4
`
