// Package playertest provides scripted engine fakes for exercising code built on player.
package playertest

import (
	"context"
	"errors"
	"sync"

	"github.com/ava-cli/ava/media"
	"github.com/ava-cli/ava/player"
	"github.com/samber/mo"
)

// Primitive records every command and lets the test decide which notifications fire.
// Commands never emit notifications on their own, so state only moves when the
// test confirms it with Fire.
type Primitive struct {
	mu sync.Mutex

	LoadErr error
	PlayErr error

	Loads, Plays, Pauses int
	MuteCalls            []bool
	Closed               bool

	muted bool
	out   chan player.Notification
}

var _ player.Primitive = (*Primitive)(nil)

// NewPrimitive returns a fake with an open notification channel.
func NewPrimitive() *Primitive {
	return &Primitive{out: make(chan player.Notification, 64)}
}

func (p *Primitive) Load(_ context.Context, _ media.Source, configuration media.Configuration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Loads++
	p.muted = configuration.Muted
	return p.LoadErr
}

func (p *Primitive) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Plays++
	return p.PlayErr
}

func (p *Primitive) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Pauses++
	return nil
}

func (p *Primitive) SetMuted(muted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.MuteCalls = append(p.MuteCalls, muted)
	p.muted = muted
	return nil
}

// Muted reports the current engine mute flag.
func (p *Primitive) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// VolumeChange builds the notification the engine would emit for its current mute flag.
func (p *Primitive) VolumeChange() player.Notification {
	return player.Notification{Kind: player.KindVolumeChange, Muted: p.Muted()}
}

// Fire queues a notification as if the engine emitted it.
func (p *Primitive) Fire(n player.Notification) {
	p.out <- n
}

func (p *Primitive) Notifications() <-chan player.Notification {
	return p.out
}

func (p *Primitive) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.Closed {
		p.Closed = true
		close(p.out)
	}
	return nil
}

// Engine returns a constructor handing out p and fs, for code that creates its engine lazily.
func Engine(p *Primitive, fs *Fullscreen) func() (player.Primitive, player.Fullscreen) {
	return func() (player.Primitive, player.Fullscreen) {
		return p, fs
	}
}

// ErrDenied is what Fullscreen returns when told to deny.
var ErrDenied = errors.New("denied by platform")

// Fullscreen is a fullscreen subsystem whose answers the test controls.
type Fullscreen struct {
	mu sync.Mutex

	Deny bool

	Requests, Exits int
	holder          mo.Option[string]
}

var _ player.Fullscreen = (*Fullscreen)(nil)

func (f *Fullscreen) Holder(context.Context) (mo.Option[string], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.holder, nil
}

func (f *Fullscreen) Request(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests++
	if f.Deny {
		return errors.Join(player.ErrFullscreenDenied, ErrDenied)
	}
	f.holder = mo.Some("surface")
	return nil
}

func (f *Fullscreen) Exit(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Exits++
	if f.Deny {
		return errors.Join(player.ErrFullscreenDenied, ErrDenied)
	}
	f.holder = mo.None[string]()
	return nil
}
