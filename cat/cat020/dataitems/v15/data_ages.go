// cat/cat020/dataitems/v15/data_ages.go
package v15

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// MaxDataAgeSubfields bounds the FX-chained primary of the RE data-ages
// field: capacity is a compile-time constant, never a silently truncating
// allocation.
const MaxDataAgeSubfields = 17

// AgeEntry is one {bds_register, age} pair. Age is in units of 1/4 second.
type AgeEntry struct {
	BDSRegister uint8
	Age         uint8
}

// DataAges implements the Cat020 RE (Reserved Expansion) field: a
// length-prefixed wrapper around an FX-chained primary subfield selecting
// up to MaxDataAgeSubfields secondaries. Every secondary except #3 is a
// single AgeEntry; #3 is itself REP-prefixed repetitive.
type DataAges struct {
	Present   [MaxDataAgeSubfields]bool
	Entry     [MaxDataAgeSubfields]AgeEntry // used for all but subfield #3
	Subfield3 []AgeEntry                    // repetitive list for subfield #3

	SSCWorkaroundApplied bool // set when Cat020Options.EnableSSCWorkaround fired
}

// Cat020Options carries vendor-specific, opt-in decode behavior. The zero
// value is the spec-conformant default.
type Cat020Options struct {
	// EnableSSCWorkaround reproduces a known source-vendor quirk: a
	// length-15 RE record whose second octet is all-zero is treated as
	// pa=1 rather than a malformed record. Off by default; turning it on
	// trades strict wire conformance for compatibility with that vendor's
	// historical recordings.
	EnableSSCWorkaround bool
}

var defaultOptions Cat020Options

// SetOptions installs the package-wide Cat020Options used by DataAges.Decode.
// Category decoders are constructed once at startup, so this is set before
// any decode call, never concurrently with one.
func SetOptions(o Cat020Options) { defaultOptions = o }

func NewDataAges() *DataAges { return &DataAges{} }

func (d *DataAges) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: I020/RE total length", asterix.ErrBufferTooShort)
	}
	totalLen := int(buf.Next(1)[0])
	if totalLen == 0 {
		return 1, fmt.Errorf("%w: I020/RE declares zero total length", asterix.ErrInvalidMessage)
	}
	if buf.Len() < totalLen-1 {
		return 1, fmt.Errorf("%w: I020/RE needs %d more bytes, have %d", asterix.ErrBufferTooShort, totalLen-1, buf.Len())
	}
	body := bytes.NewBuffer(buf.Next(totalLen - 1))
	read := 1 + (totalLen - 1)

	if defaultOptions.EnableSSCWorkaround && totalLen == 15 && body.Len() >= 2 {
		b := body.Bytes()
		if b[1] == 0 {
			d.SSCWorkaroundApplied = true
			d.Present[0] = true
			d.Entry[0] = AgeEntry{BDSRegister: b[0], Age: 1}
			return read, nil
		}
	}

	consumed := 0
	var primary []byte
	for {
		if body.Len() < 1 {
			return read, fmt.Errorf("%w: I020/RE primary subfield octet", asterix.ErrBufferTooShort)
		}
		b := body.Next(1)[0]
		primary = append(primary, b)
		consumed++
		if b&0x01 == 0 {
			break
		}
		if len(primary)*7 >= MaxDataAgeSubfields {
			break
		}
	}

	idx := 0
	for _, octet := range primary {
		for bit := 7; bit >= 1 && idx < MaxDataAgeSubfields; bit-- {
			if octet&(1<<uint(bit)) == 0 {
				idx++
				continue
			}
			d.Present[idx] = true
			if idx == 2 { // subfield #3: repetitive list
				if body.Len() < 1 {
					return read, fmt.Errorf("%w: I020/RE subfield #3 REP", asterix.ErrBufferTooShort)
				}
				rep := int(body.Next(1)[0])
				consumed++
				if body.Len() < rep*2 {
					return read, fmt.Errorf("%w: I020/RE subfield #3 entries", asterix.ErrBufferTooShort)
				}
				d.Subfield3 = make([]AgeEntry, rep)
				for i := 0; i < rep; i++ {
					pair := body.Next(2)
					d.Subfield3[i] = AgeEntry{BDSRegister: pair[0], Age: pair[1]}
				}
				consumed += rep * 2
			} else {
				if body.Len() < 2 {
					return read, fmt.Errorf("%w: I020/RE subfield #%d", asterix.ErrBufferTooShort, idx+1)
				}
				pair := body.Next(2)
				d.Entry[idx] = AgeEntry{BDSRegister: pair[0], Age: pair[1]}
				consumed += 2
			}
			idx++
		}
	}

	if consumed != totalLen-1 {
		return read, fmt.Errorf("%w: I020/RE inner subfields total %d bytes, header declared %d",
			asterix.ErrInvalidMessage, consumed, totalLen-1)
	}

	return read, nil
}

func (d *DataAges) Encode(buf *bytes.Buffer) (int, error) {
	var body bytes.Buffer

	nOctets := (MaxDataAgeSubfields + 6) / 7
	primary := make([]byte, nOctets)
	for i := 0; i < MaxDataAgeSubfields; i++ {
		if !d.Present[i] {
			continue
		}
		octetIdx := i / 7
		bitPos := 7 - (i % 7)
		primary[octetIdx] |= 1 << uint(bitPos)
	}
	for i := 0; i < nOctets-1; i++ {
		primary[i] |= 0x01
	}
	body.Write(primary)

	for i := 0; i < MaxDataAgeSubfields; i++ {
		if !d.Present[i] {
			continue
		}
		if i == 2 {
			if len(d.Subfield3) > 255 {
				return 0, fmt.Errorf("%w: I020/RE subfield #3 has %d entries, max 255",
					asterix.ErrInvalidMessage, len(d.Subfield3))
			}
			body.WriteByte(byte(len(d.Subfield3)))
			for _, e := range d.Subfield3 {
				body.WriteByte(e.BDSRegister)
				body.WriteByte(e.Age)
			}
			continue
		}
		body.WriteByte(d.Entry[i].BDSRegister)
		body.WriteByte(d.Entry[i].Age)
	}

	total := body.Len() + 1
	if total > 255 {
		return 0, fmt.Errorf("%w: I020/RE total length %d exceeds 255", asterix.ErrInvalidMessage, total)
	}
	if err := buf.WriteByte(byte(total)); err != nil {
		return 0, fmt.Errorf("writing I020/RE length: %w", err)
	}
	n, err := buf.Write(body.Bytes())
	if err != nil {
		return 1 + n, fmt.Errorf("writing I020/RE body: %w", err)
	}
	return 1 + n, nil
}

func (d *DataAges) Validate() error { return nil }

func (d *DataAges) String() string {
	n := 0
	for _, p := range d.Present {
		if p {
			n++
		}
	}
	return fmt.Sprintf("DataAges(%d subfields present)", n)
}
