package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// AddActor spawns a non-player actor on the client.
type AddActor struct {
	ActorUniqueID  types.ActorUniqueID
	ActorRuntimeID types.ActorRuntimeID
	ActorType      string
	Position       types.Vec3
	Velocity       types.Vec3
	Rotation       types.Vec2
	HeadYaw        float32
	BodyYaw        float32
	Attributes     []types.AttributeValue
	Links          []types.ActorLink
}

func (*AddActor) ID() uint32 { return IDAddActor }

func (pk *AddActor) Marshal(io wire.IO) {
	pk.ActorUniqueID.Marshal(io)
	pk.ActorRuntimeID.Marshal(io)
	io.String(&pk.ActorType)
	pk.Position.Marshal(io)
	pk.Velocity.Marshal(io)
	pk.Rotation.Marshal(io)
	io.Float32(&pk.HeadYaw)
	io.Float32(&pk.BodyYaw)
	wire.MarshalerSlice[types.AttributeValue](io, &pk.Attributes)
	wire.MarshalerSlice[types.ActorLink](io, &pk.Links)
}
