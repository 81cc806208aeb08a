package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxCoordinate bounds the absolute value of any queried coordinate. Zoom
// arithmetic shifts coordinates left by at most a few dozen bits in total,
// so 2^40 leaves ample headroom in 64-bit ints. On 32-bit platforms the
// bound shrinks so that it and region extents still fit an int.
const MaxCoordinate = min(1<<40, math.MaxInt>>8)

// MaxRegionCells bounds a single region request.
const MaxRegionCells = 4096 * 4096

// ValidateSize checks a biome or river size. Size 0 would skip zooming
// entirely, so sizes must be at least 1.
func ValidateSize(name string, size int) error {
	if size < 1 {
		return New(ErrCodeInvalidSize, "%s must be >= 1, got %d", name, size)
	}
	if size > 16 {
		return New(ErrCodeInvalidSize, "%s must be <= 16, got %d", name, size)
	}
	return nil
}

// ValidateCoordinate checks that (x, z) lies within the supported range.
func ValidateCoordinate(x, z int) error {
	if x < -MaxCoordinate || x > MaxCoordinate || z < -MaxCoordinate || z > MaxCoordinate {
		return New(ErrCodeCoordinateRange, "coordinate (%d, %d) outside +/-%d", x, z, MaxCoordinate)
	}
	return nil
}

// ValidateRegion checks the origin and extent of a rectangular query.
func ValidateRegion(x, z, width, height int) error {
	if width < 1 || height < 1 {
		return New(ErrCodeInvalidRegion, "region must be at least 1x1, got %dx%d", width, height)
	}
	if width > MaxRegionCells || height > MaxRegionCells || int64(width)*int64(height) > MaxRegionCells {
		return New(ErrCodeInvalidRegion, "region %dx%d exceeds %d cells", width, height, MaxRegionCells)
	}
	if err := ValidateCoordinate(x, z); err != nil {
		return err
	}
	return ValidateCoordinate(x+width-1, z+height-1)
}

// ValidateName validates a registry name (world type, chain) for safety.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Only lowercase letters, digits, '_' and '-'
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "%s name cannot be empty", kind)
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidConfig, "%s name too long (max 64 characters)", kind)
	}
	for _, r := range name {
		if !(unicode.IsLower(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return New(ErrCodeInvalidConfig, "%s name %q contains invalid character %q", kind, name, r)
		}
	}
	return nil
}

// ValidateFormat checks an output format against the allowed set.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(allowed, ", "))
}
