package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// ResourcePackClientResponse is the client's answer at each step of
// resource pack negotiation. The pack list uses a fixed-width count, one of
// the protocol's older corners.
type ResourcePackClientResponse struct {
	Response        types.PackResponseStatus
	PacksToDownload []string
}

func (*ResourcePackClientResponse) ID() uint32 { return IDResourcePackClientResponse }

func (pk *ResourcePackClientResponse) Marshal(io wire.IO) {
	pk.Response.Marshal(io)

	count := uint16(len(pk.PacksToDownload))
	io.Uint16(&count)

	if r, ok := io.(*wire.Reader); ok {
		if int(count) > r.Remaining() {
			io.Fail(fmt.Errorf("%w: pack id count %d exceeds frame", errs.ErrTruncated, count))
			return
		}
		pk.PacksToDownload = make([]string, count)
	}
	for i := range pk.PacksToDownload {
		io.String(&pk.PacksToDownload[i])
	}
}
