package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
)

// Load reads and parses a document from a file on disk.
func Load(filename string) (*Document, error) {
	src, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	doc, err := Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return doc, nil
}
