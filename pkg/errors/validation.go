package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// imageExtensions lists the raster formats a plan can be written as.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// fontExtensions lists the font container formats the font library can parse.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
}

// ValidatePath validates a file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateImagePath validates an output image path.
// The extension decides the encoder, so it must name a supported format.
func ValidateImagePath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !imageExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported image extension %q (want png, jpg, jpeg, gif, tif, tiff or bmp)", ext)
	}
	return nil
}

// ValidateFontPath validates a TrueType/OpenType font path.
func ValidateFontPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !fontExtensions[ext] {
		return New(ErrCodeInvalidFormat, "only .ttf and .otf fonts are supported, got %q", ext)
	}
	return nil
}

// ValidateSettingsPath validates a settings file path.
func ValidateSettingsPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if ext := filepath.Ext(path); ext != ".toml" {
		return New(ErrCodeInvalidPath, "settings file must have .toml extension, got %q", ext)
	}
	return nil
}
