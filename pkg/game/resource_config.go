package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example:
//
//	hud:
//	  images:
//	    - id: heart
//	      path: images/heart
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource represents a single image resource definition.
// The ID doubles as an animation ID: the key frame of an animation is the
// whole image, or the first cell when the image is a sprite sheet.
//
// Examples:
//
//	Simple image:
//	  - id: heart
//	    path: images/heart
//
//	Sprite sheet (key frame = top-left cell):
//	  - id: button-hover
//	    path: images/buttons.png
//	    cols: 3
type ImageResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Cols int    `yaml:"cols,omitempty"` // Sprite sheet columns (0 if not a sprite sheet)
	Rows int    `yaml:"rows,omitempty"` // Sprite sheet rows (0 if not a sprite sheet)
}

// SoundResource represents a single sound effect definition.
//
// Example:
//   - id: SOUND_BUTTONCLICK
//     path: sounds/buttonclick.ogg
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// FontResource represents a single TTF/OTF font definition.
type FontResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// spriteSheetGrid 返回精灵图的行列数，未配置时视为 1x1
func (r ImageResource) spriteSheetGrid() (cols, rows int) {
	cols, rows = r.Cols, r.Rows
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return cols, rows
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
