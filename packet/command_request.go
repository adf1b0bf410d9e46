package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Command origin types.
const (
	CommandOriginPlayer uint32 = iota
	CommandOriginBlock
	CommandOriginMinecartBlock
	CommandOriginDevConsole
	CommandOriginTest
	CommandOriginAutomationPlayer
	CommandOriginClientAutomation
	CommandOriginDedicatedServer
	CommandOriginActor
	CommandOriginVirtual
	CommandOriginGameArgument
	CommandOriginActorServer
)

// CommandRequest submits a slash command typed by the player, with enough
// origin data to route its output back.
type CommandRequest struct {
	CommandLine    string
	OriginType     uint32
	OriginUUID     string
	RequestID      string
	PlayerUniqueID int64
	Internal       bool
	Version        int32
}

func (*CommandRequest) ID() uint32 { return IDCommandRequest }

func (pk *CommandRequest) Marshal(io wire.IO) {
	io.String(&pk.CommandLine)
	io.Varuint32(&pk.OriginType)
	if io.Reading() && pk.OriginType > CommandOriginActorServer {
		io.Fail(fmt.Errorf("%w: CommandOrigin tag %d", errs.ErrUnknownVariant, pk.OriginType))
		return
	}

	io.String(&pk.OriginUUID)
	io.String(&pk.RequestID)
	if pk.OriginType == CommandOriginDevConsole || pk.OriginType == CommandOriginTest {
		io.Varint64(&pk.PlayerUniqueID)
	}

	io.Bool(&pk.Internal)
	io.Varint32(&pk.Version)
}
