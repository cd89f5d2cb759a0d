package config

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/iburimskiy/liquid-button/internal/blob"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse("liquid", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"ocean", "emerald", "sunset"}; !reflect.DeepEqual(c.Schemes, want) {
		t.Errorf("Schemes = %v, want %v", c.Schemes, want)
	}
	if c.Margin != 60 || c.Frames != 150 || c.Mute || c.ExportDir != "" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if p := c.Params(); p.Margin != 60 || p.SurfaceSize != 300 {
		t.Errorf("Params() = %+v", p)
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{"-schemes", " sunset, ,plum ", "-margin", "30", "-mute", "-export", "out", "-frames", "12", "-seed", "9"}
	c, err := Parse("liquid", args, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"sunset", "plum"}; !reflect.DeepEqual(c.Schemes, want) {
		t.Errorf("Schemes = %v, want %v", c.Schemes, want)
	}
	if c.Margin != 30 || !c.Mute || c.ExportDir != "out" || c.Frames != 12 || c.Seed != 9 {
		t.Errorf("unexpected config: %+v", c)
	}
	if err := c.Validate(); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("Validate() = %v, want ErrUnknownScheme", err)
	}
	if c.Params().Margin != 30 {
		t.Errorf("Params().Margin = %v, want 30", c.Params().Margin)
	}
}

func TestParseErrors(t *testing.T) {
	tests := [][]string{
		{"-margin", "-1"},
		{"-margin", "NaN"},
		{"-margin", "+Inf"},
		{"-margin", "-Inf"},
		{"-margin", "201"},
		{"-frames", "0"},
		{"-bogus"},
	}
	for _, args := range tests {
		var out bytes.Buffer
		if _, err := Parse("liquid", args, &out); err == nil {
			t.Errorf("Parse(%v) succeeded, want error", args)
		}
		if out.Len() == 0 {
			t.Errorf("Parse(%v) printed nothing", args)
		}
	}
}

func TestParseEmptySchemes(t *testing.T) {
	c, err := Parse("liquid", []string{"-schemes", ""}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c.Schemes, []string{"ocean"}) {
		t.Errorf("Schemes = %v, want [ocean]", c.Schemes)
	}
}

func TestWindowSize(t *testing.T) {
	if w, h := WindowSize(1, 300); w != 380 || h != 380 {
		t.Errorf("WindowSize(1, 300) = %d,%d, want 380,380", w, h)
	}
	if w, _ := WindowSize(3, 300); w != 80+3*300+2*40 {
		t.Errorf("WindowSize(3, 300) width = %d", w)
	}
	w0, _ := WindowSize(0, 300)
	w1, _ := WindowSize(1, 300)
	if w0 != w1 {
		t.Error("zero buttons should size like one")
	}
}

func TestParamsFollowMargin(t *testing.T) {
	c, err := Parse("liquid", []string{"-margin", "20.5"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	p := c.Params()
	if p.SurfaceSize != ButtonSize+42 {
		t.Errorf("SurfaceSize = %d, want %d", p.SurfaceSize, ButtonSize+42)
	}
	s := blob.NewState(p, 0)
	if s.Center.X != 111 || s.Center.Y != 111 || s.BaseRadius != 75 {
		t.Errorf("center = %v radius = %v, want (111,111) and 75", s.Center, s.BaseRadius)
	}
}
