package stream

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/matt-g-everett/scenetx/scene"
)

func readFloat(t *testing.T, data []byte, offset int) float64 {
	t.Helper()
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(data[offset:])))
}

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(2500*time.Millisecond, []scene.ObjectState{
		{Name: "leaf", Position: scene.Vector3{X: 500, Y: 290, Z: 100}, Rotation: scene.Vector3{X: -0.25, Y: 2.5, Z: 4.25}, Scale: 1},
		{Name: "saturn", Scale: 0.5},
	})

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	if want := 6 + 2*(1+7*4) + len("leaf") + len("saturn"); len(data) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(data))
	}
	if ms := binary.LittleEndian.Uint32(data); ms != 2500 {
		t.Fatalf("expected elapsed 2500ms, got %d", ms)
	}
	if n := binary.LittleEndian.Uint16(data[4:]); n != 2 {
		t.Fatalf("expected 2 objects, got %d", n)
	}

	if data[6] != 4 || string(data[7:11]) != "leaf" {
		t.Fatalf("unexpected first name header % x", data[6:11])
	}
	want := []float64{500, 290, 100, -0.25, 2.5, 4.25, 1}
	for i, w := range want {
		if got := readFloat(t, data, 11+i*4); got != w {
			t.Fatalf("field %d: expected %v, got %v", i, w, got)
		}
	}

	second := 11 + 7*4
	if data[second] != 6 || string(data[second+1:second+7]) != "saturn" {
		t.Fatalf("unexpected second name header")
	}
	if got := readFloat(t, data, second+7+6*4); got != 0.5 {
		t.Fatalf("expected saturn scale 0.5, got %v", got)
	}
}

func TestFrameMarshalBinaryRejectsLongNames(t *testing.T) {
	f := NewFrame(0, []scene.ObjectState{{Name: strings.Repeat("x", 300)}})
	if _, err := f.MarshalBinary(); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
}

func TestFrameMarshalBinaryElapsedRange(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		wantErr bool
	}{
		{"last_millisecond", time.Duration(math.MaxUint32) * time.Millisecond, false},
		{"past_uint32", time.Duration(math.MaxUint32+1) * time.Millisecond, true},
		{"fifty_days", 50 * 24 * time.Hour, true},
		{"negative", -time.Millisecond, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := NewFrame(c.elapsed, nil).MarshalBinary()
			if c.wantErr {
				if !errors.Is(err, ErrFrameTooLarge) {
					t.Fatalf("expected ErrFrameTooLarge, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MarshalBinary: %v", err)
			}
			if ms := binary.LittleEndian.Uint32(data); ms != math.MaxUint32 {
				t.Fatalf("expected %d, got %d", uint32(math.MaxUint32), ms)
			}
		})
	}
}
