package packet

import "github.com/arloliu/bedrockproto/wire"

// ContainerClose closes a container window; either side may initiate.
type ContainerClose struct {
	ContainerID     int8
	ServerInitiated bool
}

func (*ContainerClose) ID() uint32 { return IDContainerClose }

func (pk *ContainerClose) Marshal(io wire.IO) {
	io.Int8(&pk.ContainerID)
	io.Bool(&pk.ServerInitiated)
}
