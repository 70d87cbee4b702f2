//go:build unit

package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path     string
		expected Class
	}{
		{"img/pictures/hero.png", ClassImage},
		{"img/titles1/Title.JPG", ClassImage},
		{"audio/bgm/theme.ogg", ClassAudio},
		{"audio/se/Attack.M4A", ClassAudio},
		{"effects/Fire1.efkefc", ClassParticle},
		{"js/plugins/Core.js", ClassScript},
		{"data/Actors.json", ClassData},
		{"fonts/mplus.ttf", ClassOther},
		{"icon/icon.ico", ClassOther},
		{"locales/en-US.pak", ClassOther},
		{"noextension", ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.path))
		})
	}
}

func TestClass_Scannable(t *testing.T) {
	assert.True(t, ClassData.Scannable())
	assert.True(t, ClassScript.Scannable())
	assert.True(t, ClassParticle.Scannable())
	assert.False(t, ClassImage.Scannable())
	assert.False(t, ClassAudio.Scannable())
	assert.False(t, ClassOther.Scannable())
}

func TestClass_Reportable(t *testing.T) {
	assert.False(t, ClassData.Reportable())
	assert.False(t, ClassScript.Reportable())
	assert.True(t, ClassImage.Reportable())
	assert.True(t, ClassAudio.Reportable())
	assert.True(t, ClassParticle.Reportable())
	assert.True(t, ClassOther.Reportable())
}

func TestExtensions_PreferenceOrder(t *testing.T) {
	assert.Equal(t, ".png", Extensions(ClassImage)[0])
	assert.Equal(t, ".ogg", Extensions(ClassAudio)[0])
	assert.Nil(t, Extensions(ClassOther))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "img/pictures/hero.png", Canonical("img\\Pictures\\Hero.PNG"))
	assert.Equal(t, Canonical("IMG/a.png"), Canonical("img/A.PNG"))
}
