package types

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// AbsentIndex marks a face index component that was not specified in the
// source file (e.g. the uv slot of a "5//2" face vertex).
const AbsentIndex uint32 = math.MaxUint32

type Vec2 f32.Vec2
type Vec3 f32.Vec3

// Uint3 holds the position, uv and normal indices of a single face vertex.
type Uint3 [3]uint32

// Returns true if the index at slot i was specified.
func (t Uint3) Has(i int) bool {
	return t[i] != AbsentIndex
}

func (t Uint3) String() string {
	var out [3]string
	for i := range t {
		if t.Has(i) {
			out[i] = fmt.Sprint(t[i])
		} else {
			out[i] = "-"
		}
	}
	return fmt.Sprintf("(%s, %s, %s)", out[0], out[1], out[2])
}
