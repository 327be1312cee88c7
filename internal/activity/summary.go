package activity

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const summaryKey = "%d active days in the last %d weeks"

// Languages are the tags the summary has translations for, English first as the fallback
var Languages = []language.Tag{language.English, language.Hungarian, language.German}

func init() {
	_ = message.SetString(language.English, summaryKey, "%d active days in the last %d weeks")
	_ = message.SetString(language.Hungarian, summaryKey, "%d aktív nap az elmúlt %d hétben")
	_ = message.SetString(language.German, summaryKey, "%d aktive Tage in den letzten %d Wochen")
}

// Summary renders a short localized caption for the grid, e.g. "57 active days in the last 12 weeks"
func (g Grid) Summary(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf(summaryKey, g.Active(), g.Weeks)
}
