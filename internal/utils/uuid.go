package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered (v7) identifiers, falling back to v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateFilename returns a fresh UUID keeping the lower-cased extension of
// original, e.g. "Photo.JPG" -> "0190....jpg".
func (g *UUIDGenerator) GenerateFilename(original string) string {
	return g.Generate() + strings.ToLower(filepath.Ext(original))
}
