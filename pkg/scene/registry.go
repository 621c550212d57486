package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lumenpath/pathtracer/pkg/loaders"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Options carries the inputs some scenes need beyond their defaults
type Options struct {
	MeshPath    string              // STL file for the mesh scene
	Mesh        loaders.MeshOptions // Placement of the mesh; zero fits it to the stage
	TexturePath string              // Optional image for textured spheres
	Seed        int64               // Seed for randomly laid out scenes
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func(Options) (*Scene, error)
}

var registry = map[string]SceneInfo{
	"default": {
		Name:        "default",
		Description: "Matte red sphere on a large ground sphere under a sky gradient",
		build:       func(Options) (*Scene, error) { return NewDefaultScene(), nil },
	},
	"cornell": {
		Name:        "cornell",
		Description: "Cornell box with two rotated boxes and a ceiling light",
		build:       func(Options) (*Scene, error) { return NewCornellScene(), nil },
	},
	"spheres": {
		Name:        "spheres",
		Description: "Random field of small spheres around three large ones",
		build:       NewSpheresScene,
	},
	"textures": {
		Name:        "textures",
		Description: "Checker, image and emissive textures on spheres and rects",
		build:       NewTextureScene,
	},
	"mesh": {
		Name:        "mesh",
		Description: "STL model on a stage lit by an area light (needs a mesh path)",
		build:       NewMeshScene,
	},
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, info := range registry {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	info, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	s, err := info.build(opts)
	if err != nil {
		return nil, fmt.Errorf("creating scene %q: %w", name, err)
	}
	return s, nil
}
