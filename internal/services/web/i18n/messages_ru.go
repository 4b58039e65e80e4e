package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, "app.name", "Фудграм")

	// Technologies page
	message.SetString(lang, "technologies.meta.title", "О проекте")
	message.SetString(lang, "technologies.meta.description", "Фудграм - Технологии")
	message.SetString(lang, "technologies.heading", "Технологии")
	message.SetString(lang, "technologies.subtitle", "Технологии, которые применены в этом проекте:")

	// Not found page
	message.SetString(lang, "notfound.meta.title", "Страница не найдена")
	message.SetString(lang, "notfound.heading", "Страница не найдена")
	message.SetString(lang, "notfound.body", "Запрошенная страница не существует.")
}
