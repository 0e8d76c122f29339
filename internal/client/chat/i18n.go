package chat

// Supported display languages.
const (
	LangEnglish = "en"
	LangUrdu    = "ur"
)

type phrases struct {
	greeting    string
	failure     string
	placeholder string
}

var catalog = map[string]phrases{
	LangEnglish: {
		greeting:    "Hello! How can I help you today?",
		failure:     "Sorry, I could not reach the assistant. Please try again later.",
		placeholder: "Type your message...",
	},
	LangUrdu: {
		greeting:    "السلام علیکم! آج میں آپ کی کیسے مدد کر سکتا ہوں؟",
		failure:     "معذرت، اس وقت معاون سے رابطہ نہیں ہو سکا۔ براہ کرم بعد میں دوبارہ کوشش کریں۔",
		placeholder: "اپنا پیغام ٹائپ کریں...",
	},
}

// Supported reports whether lang has translations.
func Supported(lang string) bool {
	_, ok := catalog[lang]
	return ok
}

func lookup(lang string) phrases {
	if p, ok := catalog[lang]; ok {
		return p
	}
	return catalog[LangEnglish]
}
