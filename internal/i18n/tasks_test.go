package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTasks_English(t *testing.T) {
	tasks := DefaultTasks(LangEnglish)

	require.Len(t, tasks, 6)
	assert.Equal(t, "Studying", tasks[0].Name)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "#FF6B6B", tasks[0].Color)
	assert.Equal(t, "📚", tasks[0].Icon)
}

func TestDefaultTasks_Turkish(t *testing.T) {
	tasks := DefaultTasks(LangTurkish)

	require.Len(t, tasks, 6)
	assert.Equal(t, "Ders Çalışma", tasks[0].Name)
}

func TestDefaultTasks_UnknownLanguageFallsBack(t *testing.T) {
	assert.Equal(t, DefaultTasks(LangTurkish), DefaultTasks("de"))
}

func TestDefaultTasks_StylesMatchAcrossLanguages(t *testing.T) {
	en := DefaultTasks(LangEnglish)
	tr := DefaultTasks(LangTurkish)

	require.Len(t, tr, len(en))
	for i := range en {
		assert.Equal(t, en[i].ID, tr[i].ID)
		assert.Equal(t, en[i].Color, tr[i].Color)
		assert.Equal(t, en[i].Icon, tr[i].Icon)
	}
}
