package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Play statuses.
const (
	PlayStatusLoginSuccess int32 = iota
	PlayStatusLoginFailedClient
	PlayStatusLoginFailedServer
	PlayStatusPlayerSpawn
	PlayStatusLoginFailedInvalidTenant
	PlayStatusLoginFailedVanillaEdu
	PlayStatusLoginFailedEduVanilla
	PlayStatusLoginFailedServerFull
	PlayStatusLoginFailedEditorVanilla
	PlayStatusLoginFailedVanillaEditor
)

// PlayStatus reports a login or spawn state transition to the client. The
// status code is one of the few big-endian fields of the protocol.
type PlayStatus struct {
	Status int32
}

func (*PlayStatus) ID() uint32 { return IDPlayStatus }

func (pk *PlayStatus) Marshal(io wire.IO) {
	io.BEInt32(&pk.Status)

	if io.Reading() {
		if pk.Status < PlayStatusLoginSuccess || pk.Status > PlayStatusLoginFailedVanillaEditor {
			io.Fail(fmt.Errorf("%w: play status %d", errs.ErrOutOfRange, pk.Status))
		}
	}
}
