package texture

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/glade/common"
	"github.com/Carmen-Shannon/glade/engine/loader"
	"github.com/Carmen-Shannon/glade/engine/logger"
	"github.com/Carmen-Shannon/glade/engine/renderer"

	"go.uber.org/zap"
)

// Capacity is the fixed maximum number of textures a registry will hold.
const Capacity = 128

var (
	// ErrCapacity is returned when a load would exceed the registry capacity.
	ErrCapacity = errors.New("texture registry is at capacity")
	// ErrDuplicateTag is returned when a load reuses a tag that is already registered.
	ErrDuplicateTag = errors.New("texture tag is already registered")
)

// TextureEntry pairs a GPU texture name with the symbolic tag used to look it up.
type TextureEntry struct {
	// ID is the GPU texture name.
	ID uint32
	// Tag is the stable string key for lookups.
	Tag string
}

// Registry owns the mapping from symbolic texture tags to GPU texture handles
// and slot indices. It loads image files, uploads them through the render
// context, and releases them on teardown.
//
// Registration order is significant: a texture's slot index is its position in
// load order, and BindAll binds slot i to texture unit i. Every operation that
// touches the GPU may mutate global binding state; callers must not assume
// binding state survives across calls.
type Registry interface {
	// Load decodes the image at path and uploads it as a 2D texture registered
	// under tag. Images must have 3 or 4 source channels.
	//
	// Parameters:
	//   - path: the image file path
	//   - tag: the unique tag to register the texture under
	//
	// Returns:
	//   - error: ErrCapacity, ErrDuplicateTag, or a decode/upload error
	Load(path, tag string) error

	// LoadAll loads a batch of texture assets. Decoding fans out across the
	// loader's worker pool; GPU uploads happen serially on the calling thread in
	// asset order, so slot indices always follow the order of the input slice.
	//
	// Parameters:
	//   - assets: the texture assets to load
	//
	// Returns:
	//   - []error: per-asset results aligned with the input; nil entries succeeded
	LoadAll(assets []common.TextureAsset) []error

	// BindAll binds every loaded texture to the texture unit equal to its slot
	// index, establishing the stable tag to unit mapping used by draws.
	BindAll()

	// FindID returns the GPU texture name registered under tag.
	//
	// Parameters:
	//   - tag: the tag to look up
	//
	// Returns:
	//   - int64: the texture name, or -1 if the tag is not registered
	FindID(tag string) int64

	// FindSlot returns the slot index of the texture registered under tag.
	//
	// Parameters:
	//   - tag: the tag to look up
	//
	// Returns:
	//   - int: the slot index, or -1 if the tag is not registered
	FindSlot(tag string) int

	// Count returns the number of currently loaded textures.
	//
	// Returns:
	//   - int: the loaded texture count
	Count() int

	// DestroyAll releases every GPU texture held by the registry. Safe to call
	// more than once.
	DestroyAll()
}

type registry struct {
	ctx     renderer.RenderContext
	decoder loader.Loader
	entries []TextureEntry
}

var _ Registry = &registry{}

func (r *registry) Load(path, tag string) error {
	if err := r.validateSlot(tag); err != nil {
		return err
	}

	staging, err := r.decoder.Decode(path)
	if err != nil {
		return fmt.Errorf("failed to load texture %q: %w", tag, err)
	}

	return r.upload(staging, tag)
}

func (r *registry) LoadAll(assets []common.TextureAsset) []error {
	errs := make([]error, len(assets))
	if len(assets) == 0 {
		return errs
	}

	staging, decodeErrs := r.decoder.DecodeAll(assets)

	for i, asset := range assets {
		if decodeErrs[i] != nil {
			errs[i] = fmt.Errorf("failed to load texture %q: %w", asset.Tag, decodeErrs[i])
		} else if err := r.validateSlot(asset.Tag); err != nil {
			errs[i] = err
		} else {
			errs[i] = r.upload(staging[i], asset.Tag)
		}

		if errs[i] != nil {
			logger.Log.Warn("texture load failed",
				zap.String("tag", asset.Tag),
				zap.String("path", asset.Path),
				zap.Error(errs[i]))
		}
	}

	return errs
}

func (r *registry) BindAll() {
	for i, entry := range r.entries {
		r.ctx.BindTextureUnit(int32(i), entry.ID)
	}
}

func (r *registry) FindID(tag string) int64 {
	for _, entry := range r.entries {
		if entry.Tag == tag {
			return int64(entry.ID)
		}
	}
	return -1
}

func (r *registry) FindSlot(tag string) int {
	for i, entry := range r.entries {
		if entry.Tag == tag {
			return i
		}
	}
	return -1
}

func (r *registry) Count() int {
	return len(r.entries)
}

func (r *registry) DestroyAll() {
	for _, entry := range r.entries {
		r.ctx.DeleteTexture2D(entry.ID)
	}
	r.entries = r.entries[:0]
}

// validateSlot checks that one more texture can be registered under tag.
func (r *registry) validateSlot(tag string) error {
	if len(r.entries) >= Capacity {
		return fmt.Errorf("cannot load texture %q: %w", tag, ErrCapacity)
	}
	if r.FindSlot(tag) >= 0 {
		return fmt.Errorf("cannot load texture %q: %w", tag, ErrDuplicateTag)
	}
	return nil
}

// upload pushes staged pixels to the GPU and appends the registry entry.
func (r *registry) upload(staging *common.TextureStagingData, tag string) error {
	id, err := r.ctx.CreateTexture2D(staging)
	if err != nil {
		return fmt.Errorf("failed to upload texture %q: %w", tag, err)
	}

	r.entries = append(r.entries, TextureEntry{ID: id, Tag: tag})
	logger.Log.Debug("texture loaded",
		zap.String("tag", tag),
		zap.Int("slot", len(r.entries)-1))
	return nil
}
