package reader

import (
	"time"

	"github.com/Roy-Fokker/simple-obj-parser/asset"
	"github.com/Roy-Fokker/simple-obj-parser/asset/scene"
	"github.com/Roy-Fokker/simple-obj-parser/asset/wavefront"
	"github.com/Roy-Fokker/simple-obj-parser/log"
	"github.com/pkg/errors"
)

type wavefrontSceneReader struct {
	logger log.Logger
	opts   Options
}

// Create a new wavefront scene reader.
func newWavefrontReader(opts Options) *wavefrontSceneReader {
	return &wavefrontSceneReader{
		logger: log.New("wavefront scene reader"),
		opts:   opts,
	}
}

// Read an obj resource and every material library it references. Material
// libraries are resolved relative to the obj resource.
func (r *wavefrontSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	data, err := sceneRes.ReadAll()
	if err != nil {
		return nil, err
	}

	geom, err := wavefront.ParseGeometry(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", sceneRes.Path())
	}

	sc := &scene.Scene{
		Path:      sceneRes.Path(),
		Geometry:  geom,
		Materials: make([]wavefront.Material, 0),
	}

	for _, mtlFile := range geom.MtlFiles() {
		materials, err := r.readMaterials(mtlFile, sceneRes)
		if err != nil {
			if r.opts.Strict {
				return nil, err
			}

			r.logger.Warningf("skipping material library: %s", err)
			sc.MaterialErrors = append(sc.MaterialErrors, &scene.MaterialError{File: mtlFile, Err: err})
			continue
		}
		sc.Materials = append(sc.Materials, materials...)
	}

	r.logger.Noticef("parsed scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return sc, nil
}

// Parse a wavefront material library.
func (r *wavefrontSceneReader) readMaterials(mtlFile string, relTo *asset.Resource) ([]wavefront.Material, error) {
	res, err := asset.NewResource(mtlFile, relTo)
	if err != nil {
		return nil, errors.Wrapf(err, "opening material library %q referenced from %s", mtlFile, relTo.Path())
	}
	defer res.Close()

	r.logger.Infof(`parsing material library "%s"`, res.Path())

	data, err := res.ReadAll()
	if err != nil {
		return nil, err
	}

	lib, err := wavefront.ParseMaterials(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", res.Path())
	}
	return lib.Materials(), nil
}
