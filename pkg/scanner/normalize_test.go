//go:build unit

package scanner

import (
	"testing"

	"github.com/kgossett/asset-sweeper/pkg/asset"
	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *normalizer {
	files := []asset.File{
		{RelPath: "img/pictures/Hero.png", Class: asset.ClassImage},
		{RelPath: "img/pictures/Hero.webp", Class: asset.ClassImage},
		{RelPath: "audio/bgm/Theme1.ogg", Class: asset.ClassAudio},
		{RelPath: "effects/Fire1.efkefc", Class: asset.ClassParticle},
		{RelPath: "effects/texture/Fire1.png", Class: asset.ClassImage},
		{RelPath: "movies/Intro.pak", Class: asset.ClassOther},
		{RelPath: "movies/Intro.pak.info", Class: asset.ClassOther},
	}
	return &normalizer{inv: asset.NewInventory("/project", files)}
}

func TestNormalizer_ExactPath(t *testing.T) {
	n := newTestNormalizer()

	matches := n.resolve("img/pictures/Hero.png")
	assert.Len(t, matches, 1)
	assert.Equal(t, "img/pictures/Hero.png", matches[0].RelPath)
}

func TestNormalizer_CaseAndSeparatorInsensitive(t *testing.T) {
	n := newTestNormalizer()

	matches := n.resolve(`IMG\Pictures\HERO.PNG`)
	assert.Len(t, matches, 1)
	assert.Equal(t, "img/pictures/Hero.png", matches[0].RelPath)
}

func TestNormalizer_InfersExtension(t *testing.T) {
	n := newTestNormalizer()

	matches := n.resolve("img/pictures/Hero")
	assert.Len(t, matches, 1)
	assert.Equal(t, "img/pictures/Hero.png", matches[0].RelPath)
}

func TestNormalizer_InfersAudioExtension(t *testing.T) {
	n := newTestNormalizer()

	matches := n.resolve("audio/bgm/Theme1")
	assert.Len(t, matches, 1)
	assert.Equal(t, "audio/bgm/Theme1.ogg", matches[0].RelPath)
}

func TestNormalizer_BareNameMatchesStem(t *testing.T) {
	n := newTestNormalizer()

	matches := n.resolve("Fire1")
	paths := relPaths(matches)
	assert.Contains(t, paths, "effects/Fire1.efkefc")
	assert.Contains(t, paths, "effects/texture/Fire1.png")
}

func TestNormalizer_DiscardsUnresolvable(t *testing.T) {
	n := newTestNormalizer()

	assert.Empty(t, n.resolve("Some dialogue line"))
	assert.Empty(t, n.resolve("../outside.png"))
	assert.Empty(t, n.resolve("/abs/path.png"))
	assert.Empty(t, n.resolve(""))
}

func TestNormalizer_PakCompanion(t *testing.T) {
	n := newTestNormalizer()

	matches := n.resolve("movies/Intro.pak")
	paths := relPaths(matches)
	assert.Contains(t, paths, "movies/Intro.pak")
	assert.Contains(t, paths, "movies/Intro.pak.info")
}

func relPaths(files []asset.File) []string {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		paths = append(paths, file.RelPath)
	}
	return paths
}
