package domain

import (
	"time"
)

// Span is one timed stage of a request
type Span struct {
	Name      string `json:"name"`
	ElapsedMs *int64 `json:"elapsedMs"`

	startTs time.Time
}

func (s *Span) End() {
	if s.ElapsedMs == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.ElapsedMs = &t
	}
}

// Profile is an ordered list of spans. Not thread safe.
type Profile struct {
	Spans   []*Span `json:"spans"`
	TotalMs *int64  `json:"totalMs"`

	startTs time.Time
}

func NewProfile() (*Profile, func()) {
	p := &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return p, p.End
}

func (p *Profile) End() {
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

// StartNewSpan ends the last span and begins a new one
func (p *Profile) StartNewSpan(name string) (*Span, func()) {
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	s := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	p.Spans = append(p.Spans, s)
	return s, s.End
}

// ElapsedByName flattens the ended spans for structured logging
func (p *Profile) ElapsedByName() map[string]int64 {
	out := map[string]int64{}
	for _, s := range p.Spans {
		if s.ElapsedMs != nil {
			out[s.Name] = *s.ElapsedMs
		}
	}
	return out
}
