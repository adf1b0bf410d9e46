package types

import "github.com/arloliu/bedrockproto/wire"

// Vec2 is a two-component vector of little-endian 32-bit floats, used for
// planar movement and rotation pairs.
type Vec2 struct {
	X float32
	Y float32
}

func (v *Vec2) Marshal(io wire.IO) {
	io.Float32(&v.X)
	io.Float32(&v.Y)
}

// Vec3 is a three-component vector of little-endian 32-bit floats, used for
// world positions and velocities.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

func (v *Vec3) Marshal(io wire.IO) {
	io.Float32(&v.X)
	io.Float32(&v.Y)
	io.Float32(&v.Z)
}
