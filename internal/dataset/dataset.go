// Package dataset loads static contributors data file.
package dataset

import (
	"bytes"
	"fmt"
	"io/ioutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/avatargrid/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dataset is an immutable contributors collection read from json document of form {"authors": [...]}.
//
// A document with missing or malformed authors still loads. Such dataset returns app.DatasetError
// on every read, so handlers can report it per request.
type Dataset struct {
	raw          []byte
	contributors []app.Contributor
	err          error
}

var _ app.Dataset = &Dataset{}

// Load reads dataset from file.
func Load(path string) (*Dataset, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	return Parse(data)
}

// Parse creates dataset from json document.
// Returns error only if data is not a json object.
func Parse(data []byte) (*Dataset, error) {
	var doc struct {
		Authors jsoniter.RawMessage `json:"authors"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshalling dataset: %w", err)
	}

	raw := bytes.TrimSpace(doc.Authors)
	if len(raw) == 0 || raw[0] != '[' {
		return &Dataset{err: app.DatasetError("invalid authors data structure")}, nil
	}

	var contributors []app.Contributor
	if err := json.Unmarshal(raw, &contributors); err != nil {
		return &Dataset{err: app.DatasetError(fmt.Sprintf("invalid authors data: %v", err))}, nil
	}

	return &Dataset{
		raw:          raw,
		contributors: contributors,
	}, nil
}

// Contributors returns decoded contributor records in stored order.
// Returned slice is shared and must not be modified.
func (d *Dataset) Contributors() ([]app.Contributor, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.contributors, nil
}

// Raw returns authors json as stored in the file.
func (d *Dataset) Raw() ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.raw, nil
}

// Len returns number of contributors. Malformed dataset has none.
func (d *Dataset) Len() int {
	return len(d.contributors)
}
