package media

import (
	"fmt"
	"strconv"
	"strings"
)

type dimensionUnit int

const (
	unitAuto dimensionUnit = iota
	unitPixels
	unitPercent
)

type dimension struct {
	unit  dimensionUnit
	value int
}

// parseDimension accepts "auto", "", "640", "640px" and "75%".
func parseDimension(s string) (dimension, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "auto":
		return dimension{unit: unitAuto}, nil
	case strings.HasSuffix(s, "%"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
		if err != nil || n <= 0 || n > 100 {
			return dimension{}, fmt.Errorf("invalid percentage %q", s)
		}
		return dimension{unit: unitPercent, value: n}, nil
	default:
		n, err := strconv.Atoi(strings.TrimSuffix(s, "px"))
		if err != nil || n <= 0 {
			return dimension{}, fmt.Errorf("invalid dimension %q", s)
		}
		return dimension{unit: unitPixels, value: n}, nil
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// MPVArgs translates the source and configuration into mpv options.
// The media target itself is not included.
func MPVArgs(s Source, c Configuration) []string {
	args := []string{
		fmt.Sprintf("--force-media-title=%s", sanitizeTitle(s.Title())),
		fmt.Sprintf("--pause=%s", yesNo(!c.Autoplay)),
		fmt.Sprintf("--mute=%s", yesNo(c.Muted)),
		fmt.Sprintf("--osc=%s", yesNo(c.Controls)),
	}

	if c.Loop {
		args = append(args, "--loop-file=inf")
	} else {
		args = append(args, "--loop-file=no")
	}

	if p, ok := c.Preload.Get(); ok {
		switch p {
		case PreloadNone:
			args = append(args, "--cache=no")
		case PreloadMetadata:
			args = append(args, "--cache=auto")
		case PreloadAuto:
			args = append(args, "--cache=yes")
		}
	}

	if co, ok := c.CrossOrigin.Get(); ok {
		args = append(args, fmt.Sprintf("--cookies=%s", yesNo(co == CrossOriginUseCredentials)))
	}

	args = append(args, sizeArgs(s.Width, s.Height)...)

	return args
}

// sizeArgs maps pixel sizes onto --geometry and percentages of the screen
// onto --autofit. A dimension of each unit yields one option of each.
func sizeArgs(width, height string) []string {
	w, errW := parseDimension(width)
	h, errH := parseDimension(height)
	if errW != nil || errH != nil {
		return nil
	}

	var args []string
	if pixels := sizeSpec(w, h, unitPixels, ""); pixels != "" {
		args = append(args, "--geometry="+pixels)
	}
	if percent := sizeSpec(w, h, unitPercent, "%"); percent != "" {
		args = append(args, "--autofit="+percent)
	}
	return args
}

// sizeSpec renders the W, WxH or xH form for the dimensions in unit.
func sizeSpec(w, h dimension, unit dimensionUnit, suffix string) string {
	switch {
	case w.unit == unit && h.unit == unit:
		return fmt.Sprintf("%d%sx%d%s", w.value, suffix, h.value, suffix)
	case w.unit == unit:
		return fmt.Sprintf("%d%s", w.value, suffix)
	case h.unit == unit:
		return fmt.Sprintf("x%d%s", h.value, suffix)
	default:
		return ""
	}
}

// sanitizeTitle keeps the title on a single line so it survives as one argument.
func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
