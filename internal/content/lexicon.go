package content

// Lexicon keys match planner tone values.
var toneLexicon = map[string]ToneLexicon{
	"poetic": {
		Label:    "Şiirsel",
		Greeting: "Bir an dur ve bak:",
		Emphasis: []string{"ince", "ışıltılı", "derin", "sessiz"},
		Hashtags: []string{"#şiirselbakış", "#sanatvesöz", "#bakmaksanatı", "#görselşiir"},
		Summary:  "{greeting} {theme}, {philosopher} eşliğinde {angle} üzerinden bir şiir gibi açılıyor.",
	},
	"academic": {
		Label:    "Akademik",
		Greeting: "Kavramsal çerçeve:",
		Emphasis: []string{"temel", "sistematik", "eleştirel", "kuramsal"},
		Hashtags: []string{"#estetikkuramı", "#felsefeokumaları", "#sanatkuramı", "#akademi"},
		Summary:  "{greeting} {philosopher} ve {concept} ekseninde {theme} temasının {angle} perspektifinden analizi.",
	},
	"provocative": {
		Label:    "Provokatif",
		Greeting: "Rahatsız edici soru:",
		Emphasis: []string{"cüretkâr", "keskin", "sarsıcı", "tartışmalı"},
		Hashtags: []string{"#sanattartışması", "#sorgula", "#kışkırtıcısanat", "#müzeyeitiraz"},
		Summary:  "{greeting} {theme} gerçekten ne kadar masum? {philosopher} ile {angle} üzerinden kışkırtıyoruz.",
	},
	"demystifying": {
		Label:    "Sadeleştirici",
		Greeting: "Basitçe söylersek:",
		Emphasis: []string{"anlaşılır", "net", "gündelik", "pratik"},
		Hashtags: []string{"#sanatıanlamak", "#kolayfelsefe", "#herkesiçinsanat", "#sanatrehberi"},
		Summary:  "{greeting} {theme} ne demek, {philosopher} ne söylüyor ve {angle} bunu nasıl gösteriyor?",
	},
}
