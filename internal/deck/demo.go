package deck

import _ "embed"

//go:embed demo.toml
var demoDeck []byte

// Demo returns the built-in demonstration deck
func Demo() (*Deck, error) {
	d, err := Parse(demoDeck, FormatTOML)
	if err != nil {
		return nil, err
	}
	d.Source = "demo"
	return d, nil
}
