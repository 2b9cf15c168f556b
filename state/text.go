package state

import (
	svan2d "github.com/dorjeduck/svan2d"
)

// Text is a text element. It carries its content and size as plain
// attributes and deliberately exposes no outline geometry: glyph
// extraction belongs to the font collaborator, which also means a text
// state cannot take part in a shape morph.
type Text struct {
	common
	Content string
	Size    float64
}

// NewText creates an opaque black text state.
func NewText(pos svan2d.Point, content string, size float64) Text {
	return Text{common: defaultCommon(pos), Content: content, Size: size}
}

func (t Text) Kind() Kind { return KindText }

func (t Text) AttrNames() []string { return appendNames(AttrContent, AttrSize) }

func (t Text) Attr(name string) (Value, bool) {
	switch name {
	case AttrContent:
		return Str(t.Content), true
	case AttrSize:
		return Float(t.Size), true
	}
	return t.common.attr(name)
}

func (t Text) With(name string, v Value) State {
	switch {
	case name == AttrContent && v.Type() == TypeString:
		t.Content = v.Str()
	case name == AttrSize && v.Type() == TypeFloat:
		t.Size = v.Float()
	default:
		t.common.set(name, v)
	}
	return t
}

// DefaultEasing declares a midpoint step for content: strings cannot be
// interpolated continuously.
func (t Text) DefaultEasing(name string) (string, bool) {
	if name == AttrContent {
		return "step", true
	}
	return "", false
}
