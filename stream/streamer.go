package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/matt-g-everett/scenetx/animation"
	"github.com/matt-g-everett/scenetx/scene"
)

// Streamer ticks the scene's animations and streams every frame.
type Streamer struct {
	config    Config
	publisher Publisher
	manager   *animation.Manager
	scene     *scene.Scene

	mu     sync.Mutex
	latest *Frame
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, publisher Publisher, manager *animation.Manager, s *scene.Scene) *Streamer {
	st := new(Streamer)
	st.config = config
	st.publisher = publisher
	st.manager = manager
	st.scene = s
	return st
}

// PublishManifest sends the scene's descriptors, with colours resolved, as a
// retained message so a renderer joining late can build the meshes.
func (s *Streamer) PublishManifest() error {
	descriptors, err := Manifest(s.scene.Descriptors())
	if err != nil {
		return err
	}

	b, err := json.Marshal(descriptors)
	if err != nil {
		return err
	}
	return s.publisher.Publish(s.config.Mqtt.Topics.Manifest, true, b)
}

// SendFrame captures the scene at now and publishes it.
func (s *Streamer) SendFrame(now time.Time) error {
	var elapsed time.Duration
	if s.manager.Started() {
		elapsed = now.Sub(s.manager.StartTime())
	}

	f := NewFrame(elapsed, s.scene.Snapshot())
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.latest = f
	s.mu.Unlock()

	return s.publisher.Publish(s.config.Mqtt.Topics.Stream, false, b)
}

// Latest is the most recently sent frame, or nil before the first one.
func (s *Streamer) Latest() *Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Run sends a frame after every animation tick until ctx is cancelled.
func (s *Streamer) Run(ctx context.Context) error {
	return s.manager.Run(ctx, s.config.FrameInterval(), func(now time.Time) {
		if err := s.SendFrame(now); err != nil {
			log.Printf("Failed to send frame: %v", err)
		}
	})
}

// Manifest copies descriptors with every material's colours resolved to hex.
func Manifest(descriptors []scene.Descriptor) ([]scene.Descriptor, error) {
	out := make([]scene.Descriptor, len(descriptors))
	for i, d := range descriptors {
		if d.Material != nil {
			m, err := d.Material.Resolve()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", d.Name, err)
			}
			d.Material = &m
		}

		parts := make([]scene.Part, len(d.Parts))
		for j, p := range d.Parts {
			if p.Material != nil {
				m, err := p.Material.Resolve()
				if err != nil {
					return nil, fmt.Errorf("%s/%s: %w", d.Name, p.Name, err)
				}
				p.Material = &m
			}
			parts[j] = p
		}
		d.Parts = parts
		out[i] = d
	}
	return out, nil
}
