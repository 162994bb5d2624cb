// Package state saves and restores parameter values.
package state

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/justyntemme/genart-go/pkg/framework/param"
)

const magic = "GENART"

// Version is the snapshot format version written by Save.
const Version uint32 = 1

// MaxPayloadBytes bounds the encoded snapshot accepted by Load.
const MaxPayloadBytes = 64 << 20

// Entry is one saved value. Values are kept in their string form so every
// param type survives the round trip unchanged. State is the param state at
// capture time; snapshots written before it existed leave it empty.
type Entry struct {
	ID    string      `cbor:"1,keyasint"`
	Key   string      `cbor:"2,keyasint,omitempty"`
	Value string      `cbor:"3,keyasint"`
	State param.State `cbor:"4,keyasint,omitempty"`
}

// Snapshot is the set of values of an artwork at one point in time.
type Snapshot struct {
	Seed    string    `cbor:"1,keyasint,omitempty"`
	SavedAt time.Time `cbor:"2,keyasint"`
	Entries []Entry   `cbor:"3,keyasint"`
}

// Assignment is a decoded entry ready to be written back.
type Assignment struct {
	ID    string
	Key   string
	Value any
	State param.State
}

// Custom reports whether the value was set explicitly rather than taken
// from a default or a random draw.
func (a Assignment) Custom() bool {
	return a.State == "" || a.State == param.StateCustom
}

var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{
		Sort: cbor.SortCanonical,
		Time: cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Capture records the current value of every param in set. Nested params
// are stored under their key ahead of the top-level value; composites
// without a top-level value only contribute their nested entries.
func Capture(set *param.Set, seed string) *Snapshot {
	snap := &Snapshot{Seed: seed, SavedAt: time.Now().UTC()}
	for _, p := range set.All() {
		keys := make([]string, 0, len(p.Params))
		for k := range p.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n := p.Params[k]
			if v := n.Current(); v != nil {
				snap.Entries = append(snap.Entries, Entry{ID: p.ID, Key: k, Value: param.Format(n, v), State: stateOf(n)})
			}
		}
		if v := p.Current(); v != nil {
			snap.Entries = append(snap.Entries, Entry{ID: p.ID, Value: param.Format(p, v), State: stateOf(p)})
		}
	}
	return snap
}

// stateOf treats any explicit value as custom; nested writes leave the
// nested state untouched.
func stateOf(p *param.Param) param.State {
	if p.Value != nil {
		return param.StateCustom
	}
	return p.State
}

// Resolve parses the entries against the declarations in set, keeping the
// saved order. Entries for params no longer declared are skipped.
func (s *Snapshot) Resolve(set *param.Set) ([]Assignment, error) {
	var out []Assignment
	for _, e := range s.Entries {
		spec := set.Get(e.ID)
		if spec == nil {
			continue
		}
		if e.Key != "" {
			n, ok := spec.Nested(e.Key)
			if !ok {
				continue
			}
			spec = n
		}
		v, err := param.Parse(spec, e.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, Assignment{ID: e.ID, Key: e.Key, Value: v, State: e.State})
	}
	return out, nil
}

// Marshal encodes the snapshot payload.
func (s *Snapshot) Marshal() ([]byte, error) {
	return encMode.Marshal(s)
}

// Unmarshal decodes a payload produced by Marshal.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// Save writes the snapshot with a header identifying the format version.
func Save(w io.Writer, s *Snapshot) error {
	payload, err := s.Marshal()
	if err != nil {
		return err
	}

	// Write magic header
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, Version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Load reads a snapshot written by Save.
func Load(r io.Reader) (*Snapshot, error) {
	br := bufio.NewReader(r)

	header := make([]byte, len(magic))
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, err
	}
	if string(header) != magic {
		return nil, fmt.Errorf("invalid state format")
	}

	var version uint32
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version > Version {
		return nil, fmt.Errorf("state version %d is newer than supported version %d", version, Version)
	}

	var size uint32
	if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxPayloadBytes {
		return nil, fmt.Errorf("state payload of %d bytes exceeds limit of %d", size, MaxPayloadBytes)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(br, payload); err != nil {
		return nil, err
	}
	return Unmarshal(payload)
}
