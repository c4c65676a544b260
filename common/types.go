// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// TextureStagingData holds decoded RGBA pixel data for a texture pending GPU upload.
// It is produced by the image loader on whatever goroutine decoded the file and is
// consumed on the GL context thread, which keeps image decoding off the render
// thread while confining every GL call to it.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It is always in RGBA format, with 4 bytes per pixel,
	// regardless of the channel count of the source image.
	Pixels []byte
	// Width is the width of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Width int32
	// Height is the height of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Height int32
	// Channels is the channel count of the source image (3 for RGB, 4 for RGBA). Sources with any other
	// channel count are rejected by the loader before staging data is produced.
	Channels int
}

// TextureAsset pairs an image file path with the tag it should be registered under.
// Scene descriptions list their texture requirements as a slice of these.
type TextureAsset struct {
	// Path is the image file path to load.
	Path string
	// Tag is the stable lookup key the texture registry will store the texture under.
	Tag string
}
