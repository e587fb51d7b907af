package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestEngineAppendAndRead(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint32(nil, 0x00800001)
		require.Len(t, buf, 4)
		require.Equal(t, uint32(0x00800001), engine.Uint32(buf))

		buf = engine.AppendUint64(buf, 0xDEADBEEFCAFEF00D)
		require.Equal(t, uint64(0xDEADBEEFCAFEF00D), engine.Uint64(buf[4:]))
	}
}
