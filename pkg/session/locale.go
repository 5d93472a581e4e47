package session

//go:generate xgotext -no-locations -default ludo -in . -out locales

import (
	"embed"
	"fmt"
	"log"
	"strings"
	"sync"

	"codeberg.org/tslocum/gotext"
	"golang.org/x/text/language"
)

//go:embed locales
var assetFS embed.FS

const defaultDomain = "ludo-en"

var (
	languageTags  []language.Tag
	languageNames []string
	localesOnce   sync.Once
)

func init() {
	gotext.SetDomain(defaultDomain)
}

func loadLocales() {
	localesOnce.Do(func() {
		entries, err := assetFS.ReadDir("locales")
		if err != nil {
			log.Fatalf("failed to list files in locales directory: %s", err)
		}

		languageTags = []language.Tag{
			language.MustParse("en_US"),
		}
		languageNames = []string{
			"en",
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			languageTags = append(languageTags, language.MustParse(entry.Name()))
			languageNames = append(languageNames, entry.Name())

			b, err := assetFS.ReadFile(fmt.Sprintf("locales/%s/%s.po", entry.Name(), entry.Name()))
			if err != nil {
				log.Fatalf("failed to read locale %s: %s", entry.Name(), err)
			}

			po := gotext.NewPo()
			po.Parse(b)
			gotext.GetStorage().AddTranslator(fmt.Sprintf("ludo-%s", entry.Name()), po)
		}
	})
}

// matchDomain returns the translation domain which best matches the language identifier.
func matchDomain(identifier string) string {
	loadLocales()

	if identifier == "" {
		return defaultDomain
	}

	tag, err := language.Parse(identifier)
	if err != nil {
		return defaultDomain
	}

	useLanguage, index, _ := language.NewMatcher(languageTags).Match(tag)
	useLanguageCode := useLanguage.String()
	if index < 0 || useLanguageCode == "" || strings.HasPrefix(useLanguageCode, "en") {
		return defaultDomain
	}
	return "ludo-" + languageNames[index]
}
