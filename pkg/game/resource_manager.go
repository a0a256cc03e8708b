package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/hudkit/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of HUD resources.
// It provides loading and caching for images, sound effects and fonts, and
// resolves animation IDs to key frames for the render systems.
//
// Key features:
//   - Image loading and caching (PNG/JPEG)
//   - Sprite sheet key frames (first cell of a cols x rows grid)
//   - Procedural frames registered at runtime (RegisterFrame)
//   - Sound effect loading (OGG/WAV/MP3)
//   - Font faces (TTF/OTF files or the built-in Go Regular face)
//
// Files are read from the embedded data when the path exists there,
// otherwise from disk.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
//	frame, ok := rm.KeyFrame("heart")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	audioCache    map[string]*audio.Player    // Cache for loaded sound effects: path -> Player
	audioContext  *audio.Context              // Global audio context, may be nil (no sound)
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: path:size -> Face

	// 动画关键帧
	frameCache       map[string]*ebiten.Image // animation ID -> key frame (resolved from config)
	registeredFrames map[string]*ebiten.Image // animation ID -> procedural frame
	failedFrames     map[string]bool          // animation IDs whose image failed to load (logged once)

	// YAML resource configuration
	config      *ResourceConfig          // Parsed YAML configuration
	resourceMap map[string]string        // Resource ID -> file path mapping for quick lookup
	imageDefs   map[string]ImageResource // Image resource ID -> definition (sprite sheet grid)
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// audioContext may be nil, in which case sound effects cannot be loaded.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:       make(map[string]*ebiten.Image),
		audioCache:       make(map[string]*audio.Player),
		audioContext:     audioContext,
		fontFaceCache:    make(map[string]*text.GoTextFace),
		frameCache:       make(map[string]*ebiten.Image),
		registeredFrames: make(map[string]*ebiten.Image),
		failedFrames:     make(map[string]bool),
		resourceMap:      make(map[string]string),
		imageDefs:        make(map[string]ImageResource),
	}
}

// readResourceFile 读取资源文件，优先使用嵌入资源
func readResourceFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResourceFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// Returns nil if the image has not been loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a sound effect and caches its player.
// Supported formats: .ogg, .wav, .mp3. The player does not loop;
// callers rewind it before replaying.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for sound effect %s", path)
	}

	audioData, err := readResourceFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.Reader
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".wav":
		decoded, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .ogg, .wav, .mp3)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded sound effect player from the cache.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadFont loads a TTF/OTF font file and creates a text face of the given size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := readResourceFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	face, err := newGoTextFace(fontData, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// DefaultFont 返回内置 Go Regular 字体的文字 face
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	face, err := newGoTextFace(goregular.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create default font: %w", err)
	}

	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont retrieves a previously loaded font face from the cache.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", path, size)]
}

func newGoTextFace(fontData []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readResourceFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	if err := rm.ParseResourceConfig(data); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}
	return nil
}

// ParseResourceConfig 解析 YAML 资源配置并重建资源 ID 映射
// 已解析的动画关键帧会被清空，下次访问时按新配置重新解析
func (rm *ResourceManager) ParseResourceConfig(data []byte) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return err
	}

	rm.config = &config
	rm.buildResourceMap()

	rm.frameCache = make(map[string]*ebiten.Image)
	rm.failedFrames = make(map[string]bool)
	return nil
}

// buildResourceMap builds the resource ID -> file path mapping from the loaded configuration.
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.imageDefs = make(map[string]ImageResource)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
			rm.imageDefs[img.ID] = img
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg" // Default to OGG for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
		}

		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

// ResolvePath 返回资源 ID 对应的文件路径
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImageByID loads an image using its resource ID from the YAML configuration.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image by its resource ID.
// Returns nil if the ID is unknown or the image has not been loaded.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadSoundEffectByID loads a sound effect using its resource ID.
func (rm *ResourceManager) LoadSoundEffectByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads all images and sound effects in a resource group.
// Sound effects are skipped when no audio context is available.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	if rm.audioContext != nil {
		for _, sound := range group.Sounds {
			if _, err := rm.LoadSoundEffectByID(sound.ID); err != nil {
				return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
			}
		}
	}

	log.Printf("[ResourceManager] Loaded resource group: %s (%d images, %d sounds)",
		groupName, len(group.Images), len(group.Sounds))
	return nil
}

// RegisterFrame 注册一个运行时生成的动画关键帧
// 资源配置中同 ID 的图片优先于注册的帧
func (rm *ResourceManager) RegisterFrame(animID string, frame *ebiten.Image) {
	rm.registeredFrames[animID] = frame
}

// KeyFrame 返回动画 ID 对应的关键帧
//
// 查找顺序：
//  1. 已解析的关键帧缓存
//  2. 资源配置中的图片（精灵图取左上角第一格）
//  3. RegisterFrame 注册的帧
//
// 找不到时返回 false，由调用方决定是否跳过绘制。
func (rm *ResourceManager) KeyFrame(animID string) (*ebiten.Image, bool) {
	if frame, ok := rm.frameCache[animID]; ok {
		return frame, true
	}

	if def, ok := rm.imageDefs[animID]; ok && !rm.failedFrames[animID] {
		img, err := rm.LoadImageByID(animID)
		if err == nil {
			frame := spriteSheetKeyFrame(img, def)
			rm.frameCache[animID] = frame
			return frame, true
		}
		rm.failedFrames[animID] = true
		log.Printf("[ResourceManager] Warning: animation %s unavailable: %v", animID, err)
	}

	frame, ok := rm.registeredFrames[animID]
	return frame, ok
}

// spriteSheetKeyFrame 取精灵图左上角第一格作为关键帧
func spriteSheetKeyFrame(img *ebiten.Image, def ImageResource) *ebiten.Image {
	cols, rows := def.spriteSheetGrid()
	if cols == 1 && rows == 1 {
		return img
	}

	bounds := img.Bounds()
	cellWidth := bounds.Dx() / cols
	cellHeight := bounds.Dy() / rows
	if cellWidth <= 0 || cellHeight <= 0 {
		return img
	}

	cell := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+cellWidth, bounds.Min.Y+cellHeight)
	return img.SubImage(cell).(*ebiten.Image)
}
