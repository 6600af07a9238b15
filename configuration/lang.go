package configuration

// Lang is the UI language of the prebuilt call interface. LangUser defers
// to the participant's browser setting.
type Lang string

const (
	LangDe   Lang = "de"
	LangEn   Lang = "en"
	LangEs   Lang = "es"
	LangFi   Lang = "fi"
	LangFr   Lang = "fr"
	LangIt   Lang = "it"
	LangJp   Lang = "jp"
	LangKa   Lang = "ka"
	LangNl   Lang = "nl"
	LangNo   Lang = "no"
	LangPt   Lang = "pt"
	LangPl   Lang = "pl"
	LangRu   Lang = "ru"
	LangSv   Lang = "sv"
	LangTr   Lang = "tr"
	LangUser Lang = "user"

	// DefaultLang is what the service reports for a room without lang.
	DefaultLang = LangEn
)

// LangValues lists every known Lang.
func LangValues() []Lang {
	return []Lang{
		LangDe, LangEn, LangEs, LangFi, LangFr, LangIt, LangJp, LangKa,
		LangNl, LangNo, LangPt, LangPl, LangRu, LangSv, LangTr, LangUser,
	}
}

func (l Lang) String() string { return string(l) }
func (l Lang) IsKnown() bool  { return known(LangValues(), l) }
