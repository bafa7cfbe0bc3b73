package sci

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/32bitkid/sci-motion/resource"
)

// diskMapping is a resource inside one of the RESOURCE.nnn volumes.
type diskMapping struct {
	resourceType resource.Type
	number       resource.Number
	volume       uint8
	offset       uint32

	rootPath      string
	decompressors resource.DecompressorLUT

	cache resource.Resource
}

func (dm *diskMapping) Type() resource.Type     { return dm.resourceType }
func (dm *diskMapping) Number() resource.Number { return dm.number }

func (dm *diskMapping) Resource() (resource.Resource, error) {
	if dm.cache != nil {
		return dm.cache, nil
	}

	f, err := os.Open(filepath.Join(dm.rootPath, fmt.Sprintf("RESOURCE.%03d", dm.volume)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(int64(dm.offset), io.SeekStart); err != nil {
		return nil, err
	}

	id, payload, err := resource.ParsePayloadFrom(f, dm.decompressors)
	if err != nil {
		return nil, err
	}

	dm.cache = loadedResource{
		id:           id,
		resourceType: dm.resourceType,
		payload:      payload,
	}
	return dm.cache, nil
}

type loadedResource struct {
	id           resource.RID
	resourceType resource.Type
	payload      []uint8
}

func (res loadedResource) ID() resource.RID    { return res.id }
func (res loadedResource) Type() resource.Type { return res.resourceType }
func (res loadedResource) Bytes() []byte       { return res.payload }
