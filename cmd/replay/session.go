package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/input"
	"gopkg.in/yaml.v3"
)

const defaultDT = 1.0 / 60

var errEmptySession = errors.New("replay: session has no ticks")

// Session is a recorded stream of raw controller samples.
type Session struct {
	DT float64 `yaml:"dt"`
	// Origin overrides the pointer origin from pointer.yaml.
	Origin *common.Vec3 `yaml:"origin"`
	Ticks  []TickSpec   `yaml:"ticks"`
}

// TickSpec is one sample, held for Repeat polls (at least one). A
// missing status means connected.
type TickSpec struct {
	Status  *input.Status  `yaml:"status"`
	Buttons []input.Button `yaml:"buttons"`
	Yaw     float64        `yaml:"yaw"`
	Pitch   float64        `yaml:"pitch"`
	Repeat  int            `yaml:"repeat"`
}

func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", path, err)
	}
	s, err := DecodeSession(data)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

func DecodeSession(data []byte) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if len(s.Ticks) == 0 {
		return nil, errEmptySession
	}
	if s.DT <= 0 {
		s.DT = defaultDT
	}
	return &s, nil
}

// Samples expands the session into one sample per poll.
func (s *Session) Samples() []input.Sample {
	var out []input.Sample
	for _, t := range s.Ticks {
		sample := input.Sample{
			Status:      input.StatusConnected,
			Orientation: input.Orientation{}.Rotate(t.Yaw, t.Pitch),
		}
		if t.Status != nil {
			sample.Status = *t.Status
		}
		for _, b := range t.Buttons {
			sample.Set(b, true)
		}
		n := max(t.Repeat, 1)
		for range n {
			out = append(out, sample)
		}
	}
	return out
}
