//go:build unit

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScript_StringLiterals(t *testing.T) {
	content := []byte(`
		const bitmap = ImageManager.loadBitmap("img/system/", 'Window');
		AudioManager.playSe({name: "Attack3"});
	`)

	refs, required := extractScript(content)
	assert.Contains(t, refs, "img/system/")
	assert.Contains(t, refs, "Window")
	assert.Contains(t, refs, "Attack3")
	assert.Empty(t, required)
}

func TestExtractScript_RequiredAssetsDirective(t *testing.T) {
	content := []byte(`
/*:
 * @plugindesc Battle effects.
 * @requiredAssets img/pictures/Cutin1.png, img/pictures/Cutin2.png
 * @requiredAssets audio/se/Finisher.ogg
 */
	`)

	_, required := extractScript(content)
	assert.Equal(t, []string{
		"img/pictures/Cutin1.png",
		"img/pictures/Cutin2.png",
		"audio/se/Finisher.ogg",
	}, required)
}

func TestExtractScript_NulBytes(t *testing.T) {
	content := []byte("var a = \x00\"img/pictures/He\x00ro.png\";")

	refs, _ := extractScript(content)
	assert.Contains(t, refs, "img/pictures/Hero.png")
}

func TestExtractPluginList(t *testing.T) {
	content := []byte(`// Generated by RPG Maker.
var $plugins =
[
  {"name":"AltMenuScreen","status":true,"parameters":{}},
  {"name":"BattleCore","status":false,"parameters":{}},
  {"name":"","status":true,"parameters":{}}
];
`)

	refs, err := extractPluginList(content)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"js/plugins/AltMenuScreen.js",
		"js/plugins/BattleCore.js",
	}, refs)
}

func TestExtractPluginList_NoArray(t *testing.T) {
	_, err := extractPluginList([]byte("var $plugins = null;"))
	assert.ErrorIs(t, err, ErrNoPluginArray)
}

func TestExtractPluginList_MalformedArray(t *testing.T) {
	_, err := extractPluginList([]byte(`var $plugins = [{"name": };]`))
	assert.Error(t, err)
}
