// Package deck reads slide decks from TOML or YAML documents and exposes
// them as the element tree a carousel mounts on.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"carousel/internal/carousel"
)

// Document is the on-disk deck format. Optional sections are pointers so
// that an absent section can be told apart from an empty one.
type Document struct {
	Title      string             `toml:"title" yaml:"title"`
	Slides     *SlidesSection     `toml:"slides" yaml:"slides"`
	Indicators *IndicatorsSection `toml:"indicators" yaml:"indicators"`
	Controls   *ControlsSection   `toml:"controls" yaml:"controls"`
}

// SlidesSection holds the slide list
type SlidesSection struct {
	Items []SlideSpec `toml:"slide" yaml:"slide"`
}

// SlideSpec is one slide as written in the document
type SlideSpec struct {
	Title string `toml:"title" yaml:"title"`
	Body  string `toml:"body" yaml:"body"`
}

// IndicatorsSection holds the indicator list
type IndicatorsSection struct {
	Items []IndicatorSpec `toml:"indicator" yaml:"indicator"`
}

// IndicatorSpec declares the slide an indicator selects
type IndicatorSpec struct {
	Slide *int   `toml:"slide" yaml:"slide"`
	Label string `toml:"label" yaml:"label"`
}

// ControlsSection holds the control list
type ControlsSection struct {
	Items []ControlSpec `toml:"control" yaml:"control"`
}

// ControlSpec declares the navigation action of a control
type ControlSpec struct {
	Navigate string `toml:"navigate" yaml:"navigate"`
	Label    string `toml:"label" yaml:"label"`
}

// Kind tells what a node represents
type Kind int

const (
	KindSlide Kind = iota
	KindIndicator
	KindControl
)

// Node is one element of a deck. Nodes are handled by pointer so they can
// be compared by identity.
type Node struct {
	Kind  Kind
	Index int // position within its section
	Title string
	Body  string
	Label string
	data  map[string]string
}

// Data implements carousel.Element
func (n *Node) Data(key string) (string, bool) {
	v, ok := n.data[key]
	return v, ok
}

// Deck is a parsed deck document
type Deck struct {
	Title  string
	Source string

	slides        []*Node
	indicators    []*Node
	controls      []*Node
	hasSlides     bool
	hasIndicators bool
	hasControls   bool
}

// Load reads a deck file, choosing the format from its extension
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		format = FormatTOML
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

// Format is a deck serialization
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Parse decodes a deck document
func Parse(data []byte, format Format) (*Deck, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse deck: %w", err)
		}
		if err := markBareSections(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse deck: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse deck: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown deck format %q", format)
	}
	return FromDocument(doc), nil
}

// markBareSections gives a section written as a bare YAML key, such as
// "indicators:", an empty value. The decoder leaves those nil.
func markBareSections(data []byte, doc *Document) error {
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return err
	}
	if _, ok := keys["slides"]; ok && doc.Slides == nil {
		doc.Slides = &SlidesSection{}
	}
	if _, ok := keys["indicators"]; ok && doc.Indicators == nil {
		doc.Indicators = &IndicatorsSection{}
	}
	if _, ok := keys["controls"]; ok && doc.Controls == nil {
		doc.Controls = &ControlsSection{}
	}
	return nil
}

// FromDocument builds a deck from a decoded document. Validation is left to
// the carousel, which owns the configuration rules.
func FromDocument(doc Document) *Deck {
	d := &Deck{Title: doc.Title}

	if doc.Slides != nil {
		d.hasSlides = true
		for i, s := range doc.Slides.Items {
			d.slides = append(d.slides, &Node{
				Kind:  KindSlide,
				Index: i,
				Title: s.Title,
				Body:  s.Body,
			})
		}
	}

	if doc.Indicators != nil {
		d.hasIndicators = true
		for i, ind := range doc.Indicators.Items {
			n := &Node{Kind: KindIndicator, Index: i, Label: ind.Label, data: map[string]string{}}
			if ind.Slide != nil {
				n.data[carousel.AttrSlide] = strconv.Itoa(*ind.Slide)
			}
			d.indicators = append(d.indicators, n)
		}
	}

	if doc.Controls != nil {
		d.hasControls = true
		for i, ctl := range doc.Controls.Items {
			n := &Node{Kind: KindControl, Index: i, Label: ctl.Label, data: map[string]string{}}
			if ctl.Navigate != "" {
				n.data[carousel.AttrNavigate] = ctl.Navigate
			}
			d.controls = append(d.controls, n)
		}
	}

	return d
}

// Section implements carousel.Container
func (d *Deck) Section(name string) ([]carousel.Element, bool) {
	var nodes []*Node
	var ok bool
	switch name {
	case carousel.SectionSlides:
		nodes, ok = d.slides, d.hasSlides
	case carousel.SectionIndicators:
		nodes, ok = d.indicators, d.hasIndicators
	case carousel.SectionControls:
		nodes, ok = d.controls, d.hasControls
	}
	if !ok {
		return nil, false
	}
	out := make([]carousel.Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out, true
}

// Slide returns the slide node at index i
func (d *Deck) Slide(i int) *Node {
	if i < 0 || i >= len(d.slides) {
		return nil
	}
	return d.slides[i]
}

// Len returns the number of slides
func (d *Deck) Len() int {
	return len(d.slides)
}
