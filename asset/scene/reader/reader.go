package reader

import (
	"fmt"
	"strings"

	"github.com/Roy-Fokker/simple-obj-parser/asset"
	"github.com/Roy-Fokker/simple-obj-parser/asset/scene"
)

// Options control how referenced material libraries are handled.
type Options struct {
	// Abort on the first material library that cannot be read or parsed
	// instead of recording the failure in Scene.MaterialErrors.
	Strict bool
}

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or http(s) URL.
func ReadScene(filename string, opts Options) (*scene.Scene, error) {
	// Select reader based on file extension
	var reader Reader
	if strings.HasSuffix(strings.ToLower(filename), ".obj") {
		reader = newWavefrontReader(opts)
	} else {
		return nil, fmt.Errorf("readScene: unsupported file format")
	}

	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}
