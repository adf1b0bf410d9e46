package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// EmoteList announces the emote pieces a player has equipped.
type EmoteList struct {
	PlayerRuntimeID types.ActorRuntimeID
	EmotePieces     []string
}

func (*EmoteList) ID() uint32 { return IDEmoteList }

func (pk *EmoteList) Marshal(io wire.IO) {
	pk.PlayerRuntimeID.Marshal(io)
	wire.Slice(io, &pk.EmotePieces, func(io wire.IO, s *string) {
		io.String(s)
	})
}
