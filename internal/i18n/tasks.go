// Package i18n supplies locale-dependent display data. It only affects
// strings, never behavior.
package i18n

import (
	"strconv"

	"github.com/musagunn/pomotimer/internal/domain"
)

// Supported languages. Turkish is the fallback, matching the app's
// original audience.
const (
	LangEnglish = "en"
	LangTurkish = "tr"
)

var defaultTaskNames = map[string][]string{
	LangTurkish: {
		"Ders Çalışma",
		"Kodlama",
		"Proje Çalışması",
		"Okuma",
		"Yazı Yazma",
		"Dil Öğrenme",
	},
	LangEnglish: {
		"Studying",
		"Coding",
		"Project Work",
		"Reading",
		"Writing",
		"Language Learning",
	},
}

var defaultTaskStyles = []struct {
	color string
	icon  string
}{
	{"#FF6B6B", "📚"},
	{"#4ECDC4", "💻"},
	{"#95E1D3", "🎯"},
	{"#F38181", "📖"},
	{"#FFA07A", "✍️"},
	{"#98D8C8", "🌍"},
}

// DefaultTasks returns the seed task set for a language. Unknown
// languages fall back to Turkish.
func DefaultTasks(language string) []domain.Task {
	names, ok := defaultTaskNames[language]
	if !ok {
		names = defaultTaskNames[LangTurkish]
	}

	tasks := make([]domain.Task, len(names))
	for i, name := range names {
		tasks[i] = domain.Task{
			Color: defaultTaskStyles[i].color,
			ID:    strconv.Itoa(i + 1),
			Icon:  defaultTaskStyles[i].icon,
			Name:  name,
		}
	}
	return tasks
}
