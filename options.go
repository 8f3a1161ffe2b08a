package bidiscope

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/dlyongemallo/bidiscope/visual"
)

// rtlMatch matches locales whose primary language is written
// right-to-left. The first language is only used as fallback.
var rtlMatch = language.NewMatcher([]language.Tag{
	language.Arabic, // fallback
	language.Hebrew,
	language.Persian,
	language.Urdu,
	language.MustParse("ps"),  // Pashto
	language.MustParse("sd"),  // Sindhi
	language.MustParse("ug"),  // Uyghur
	language.MustParse("yi"),  // Yiddish
	language.MustParse("dv"),  // Divehi
	language.MustParse("ckb"), // Central Kurdish
})

// EnvironmentDefaults returns the default display options together with
// a recommendation whether RTL display should be switched on by default,
// derived from the user's locale. The options themselves are the zero
// configuration — word reversal only, no joiner workarounds — since the
// joiner modes depend on the terminal, not the language.
func EnvironmentDefaults() (visual.Options, bool) {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("locale detection failed, assuming %v", userLocale)
	} else {
		tracer().Infof("detected user locale %v", userLocale)
	}
	return visual.Options{}, recommendForLocale(language.Make(userLocale))
}

// recommendForLocale reports whether a locale suggests enabling RTL
// display by default.
func recommendForLocale(lang language.Tag) bool {
	_, _, confidence := rtlMatch.Match(lang)
	return confidence != language.No
}
