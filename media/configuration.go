package media

import (
	"fmt"

	"github.com/ava-cli/ava/key"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Preload hints how much of the media the engine should fetch ahead.
type Preload string

const (
	PreloadNone     Preload = "none"
	PreloadMetadata Preload = "metadata"
	PreloadAuto     Preload = "auto"
)

// ParsePreload converts a preload hint, rejecting unknown values.
func ParsePreload(s string) (Preload, error) {
	switch p := Preload(s); p {
	case PreloadNone, PreloadMetadata, PreloadAuto:
		return p, nil
	default:
		return "", fmt.Errorf("unknown preload %q (want none, metadata or auto)", s)
	}
}

// CrossOrigin is the credential mode used when fetching remote media.
type CrossOrigin string

const (
	CrossOriginAnonymous      CrossOrigin = "anonymous"
	CrossOriginUseCredentials CrossOrigin = "use-credentials"
)

// ParseCrossOrigin converts a credential mode, rejecting unknown values.
func ParseCrossOrigin(s string) (CrossOrigin, error) {
	switch c := CrossOrigin(s); c {
	case CrossOriginAnonymous, CrossOriginUseCredentials:
		return c, nil
	default:
		return "", fmt.Errorf("unknown crossorigin %q (want anonymous or use-credentials)", s)
	}
}

// Configuration is passed through verbatim to the playback engine.
// Only Muted is read by the player itself, to seed the initial mute state.
type Configuration struct {
	Autoplay    bool                   `json:"autoplay"`
	Loop        bool                   `json:"loop"`
	Muted       bool                   `json:"muted"`
	Controls    bool                   `json:"controls"`
	PlaysInline bool                   `json:"playsInline"`
	Preload     mo.Option[Preload]     `json:"preload"`
	CrossOrigin mo.Option[CrossOrigin] `json:"crossorigin"`
}

// DefaultConfiguration builds a Configuration from the configured defaults.
func DefaultConfiguration() (Configuration, error) {
	c := Configuration{
		Autoplay:    viper.GetBool(key.PlayerAutoplay),
		Loop:        viper.GetBool(key.PlayerLoop),
		Muted:       viper.GetBool(key.PlayerMuted),
		Controls:    viper.GetBool(key.PlayerControls),
		PlaysInline: viper.GetBool(key.PlayerPlaysInline),
	}

	if err := c.SetPreload(viper.GetString(key.PlayerPreload)); err != nil {
		return Configuration{}, err
	}

	if err := c.SetCrossOrigin(viper.GetString(key.PlayerCrossOrigin)); err != nil {
		return Configuration{}, err
	}

	return c, nil
}

// SetPreload parses and stores a preload hint. An empty string clears it.
func (c *Configuration) SetPreload(s string) error {
	if s == "" {
		c.Preload = mo.None[Preload]()
		return nil
	}

	p, err := ParsePreload(s)
	if err != nil {
		return err
	}
	c.Preload = mo.Some(p)
	return nil
}

// SetCrossOrigin parses and stores a credential mode. An empty string clears it.
func (c *Configuration) SetCrossOrigin(s string) error {
	if s == "" {
		c.CrossOrigin = mo.None[CrossOrigin]()
		return nil
	}

	co, err := ParseCrossOrigin(s)
	if err != nil {
		return err
	}
	c.CrossOrigin = mo.Some(co)
	return nil
}

// Validate reports enumerated fields holding values outside their set.
func (c Configuration) Validate() error {
	if p, ok := c.Preload.Get(); ok {
		if _, err := ParsePreload(string(p)); err != nil {
			return err
		}
	}

	if co, ok := c.CrossOrigin.Get(); ok {
		if _, err := ParseCrossOrigin(string(co)); err != nil {
			return err
		}
	}

	return nil
}
