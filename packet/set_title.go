package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Title actions.
const (
	TitleActionClear int32 = iota
	TitleActionReset
	TitleActionSetTitle
	TitleActionSetSubtitle
	TitleActionSetActionBar
	TitleActionSetDurations
	TitleActionTitleTextObject
	TitleActionSubtitleTextObject
	TitleActionActionBarTextObject
)

// SetTitle shows large on-screen text with fade timings.
type SetTitle struct {
	Action           int32
	Text             string
	FadeInDuration   int32
	RemainDuration   int32
	FadeOutDuration  int32
	XUID             string
	PlatformOnlineID string
}

func (*SetTitle) ID() uint32 { return IDSetTitle }

func (pk *SetTitle) Marshal(io wire.IO) {
	io.Varint32(&pk.Action)
	if io.Reading() && (pk.Action < TitleActionClear || pk.Action > TitleActionActionBarTextObject) {
		io.Fail(fmt.Errorf("%w: title action %d", errs.ErrOutOfRange, pk.Action))
		return
	}

	io.String(&pk.Text)
	io.Varint32(&pk.FadeInDuration)
	io.Varint32(&pk.RemainDuration)
	io.Varint32(&pk.FadeOutDuration)
	io.String(&pk.XUID)
	io.String(&pk.PlatformOnlineID)
}
