// asterix/tristate.go
package asterix

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Tres is a tri-state flag: a wire bit that distinguishes "absent" from
// "present but false" must never collapse to a plain bool, or the
// distinction is lost on the way to a domain record and any JSON/msgpack
// round-trip downstream.
type Tres uint8

const (
	Undefined Tres = iota
	False
	True
)

// TresFromBit derives a Tres from a single wire bit given that the bit is
// known to be present (i.e., the field carrying it was itself present).
func TresFromBit(set bool) Tres {
	if set {
		return True
	}
	return False
}

func (t Tres) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "undefined"
	}
}

func (t Tres) Bool() (value bool, defined bool) {
	switch t {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

func (t Tres) MarshalJSON() ([]byte, error) {
	switch t {
	case True:
		return []byte("true"), nil
	case False:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *Tres) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = Undefined
	case bytes.Equal(data, []byte("true")):
		*t = True
	case bytes.Equal(data, []byte("false")):
		*t = False
	default:
		return fmt.Errorf("%w: invalid Tres literal %q", ErrInvalidField, data)
	}
	return nil
}

// EncodeMsgpack lets Tres satisfy msgpack.CustomEncoder so the dedicated
// Undefined state survives the compact sink encoding the same way it
// survives JSON, instead of collapsing to a bare bool.
func (t Tres) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch t {
	case True:
		return enc.EncodeInt8(1)
	case False:
		return enc.EncodeInt8(0)
	default:
		return enc.EncodeInt8(-1)
	}
}

// DecodeMsgpack is the CustomDecoder counterpart of EncodeMsgpack.
func (t *Tres) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt8()
	if err != nil {
		return err
	}
	switch v {
	case 1:
		*t = True
	case 0:
		*t = False
	default:
		*t = Undefined
	}
	return nil
}
