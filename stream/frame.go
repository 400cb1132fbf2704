package stream

import (
	"encoding/binary"
	"errors"
	"math"
	"time"

	"github.com/matt-g-everett/scenetx/scene"
)

// ErrFrameTooLarge is returned when a frame cannot fit the binary encoding.
var ErrFrameTooLarge = errors.New("frame too large to encode")

// Frame is the transform of every scene object at one instant.
type Frame struct {
	ElapsedMs int64               `json:"elapsedMs"`
	Objects   []scene.ObjectState `json:"objects"`
}

// NewFrame creates a new Frame instance.
func NewFrame(elapsed time.Duration, objects []scene.ObjectState) *Frame {
	f := new(Frame)
	f.ElapsedMs = int64(elapsed / time.Millisecond)
	f.Objects = objects
	return f
}

// MarshalBinary packs a Frame for a renderer: little-endian uint32 elapsed
// milliseconds, uint16 object count, then per object a uint8 name length,
// the name, and seven float32s (position, rotation, scale). Elapsed times
// that do not fit in a uint32 (about 49.7 days) are rejected rather than
// wrapped.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.Objects) > math.MaxUint16 {
		return nil, ErrFrameTooLarge
	}
	if f.ElapsedMs < 0 || f.ElapsedMs > math.MaxUint32 {
		return nil, ErrFrameTooLarge
	}

	data = make([]byte, 6, 6+len(f.Objects)*(1+16+7*4))
	binary.LittleEndian.PutUint32(data, uint32(f.ElapsedMs))
	binary.LittleEndian.PutUint16(data[4:], uint16(len(f.Objects)))
	for _, o := range f.Objects {
		if len(o.Name) > math.MaxUint8 {
			return nil, ErrFrameTooLarge
		}
		data = append(data, uint8(len(o.Name)))
		data = append(data, o.Name...)
		for _, v := range []float64{
			o.Position.X, o.Position.Y, o.Position.Z,
			o.Rotation.X, o.Rotation.Y, o.Rotation.Z,
			o.Scale,
		} {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(v)))
			data = append(data, b[:]...)
		}
	}

	return data, nil
}
