//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const threeSlideDeck = `
title = "e2e deck"

[slides]
[[slides.slide]]
title = "First slide"
body = "one"
[[slides.slide]]
title = "Second slide"
body = "two"
[[slides.slide]]
title = "Third slide"
body = "three"

[indicators]
[[indicators.indicator]]
slide = 0
[[indicators.indicator]]
slide = 1
[[indicators.indicator]]
slide = 2

[controls]
[[controls.control]]
navigate = "prev"
label = "<"
[[controls.control]]
navigate = "next"
label = ">"
`

// CreateTestWorkspace creates the temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes a file into the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}

// CreateDeck writes the three slide deck into the workspace
func (tf *TUITestFramework) CreateDeck() (string, error) {
	return tf.WriteFile("deck.toml", threeSlideDeck)
}
