package dataset

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/m-zajac/avatargrid/internal/app"
)

// Write encodes contributors as dataset json document.
func Write(w io.Writer, contributors []app.Contributor) error {
	if contributors == nil {
		contributors = []app.Contributor{}
	}
	doc := struct {
		Authors []app.Contributor `json:"authors"`
	}{
		Authors: contributors,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	return nil
}

// Save writes dataset file. File is replaced atomically, so a running server never reads partial data.
func Save(path string, contributors []app.Contributor) error {
	f, err := ioutil.TempFile(filepath.Dir(path), ".dataset-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(f.Name())

	if err := Write(f, contributors); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("replacing dataset file: %w", err)
	}

	return nil
}
