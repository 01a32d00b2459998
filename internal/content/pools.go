package content

import "fmt"

var defaultPools = &Pools{
	Philosophers: []Philosopher{
		{Name: "Platon", Concept: "mimesis"},
		{Name: "Aristoteles", Concept: "katharsis"},
		{Name: "Immanuel Kant", Concept: "çıkarsız beğeni"},
		{Name: "G. W. F. Hegel", Concept: "sanatın sonu"},
		{Name: "Friedrich Nietzsche", Concept: "Apolloncu ve Dionysosçu"},
		{Name: "Martin Heidegger", Concept: "sanat yapıtının kökeni"},
		{Name: "Walter Benjamin", Concept: "aura"},
		{Name: "Theodor W. Adorno", Concept: "kültür endüstrisi"},
		{Name: "Maurice Merleau-Ponty", Concept: "bedenlenmiş algı"},
		{Name: "Arthur C. Danto", Concept: "sanat dünyası"},
		{Name: "Susan Sontag", Concept: "yoruma karşı"},
		{Name: "Jacques Rancière", Concept: "duyulurun paylaşımı"},
	},
	Themes: []Theme{
		{Label: "Aura ve yeniden üretim", Hashtag: "#aura"},
		{Label: "Güzel ve yüce", Hashtag: "#yüce"},
		{Label: "Müze bir bağlam makinesi", Hashtag: "#müzebağlamı"},
		{Label: "Boşluk ve sessizlik", Hashtag: "#sessizlik"},
		{Label: "İzleyicinin bedeni", Hashtag: "#izleyici"},
		{Label: "Sanat ve gündelik nesne", Hashtag: "#gündeliknesne"},
		{Label: "Taklit ve gerçeklik", Hashtag: "#mimesis"},
		{Label: "Kriz anında estetik", Hashtag: "#krizestetiği"},
		{Label: "Arşiv ve unutma", Hashtag: "#arşiv"},
		{Label: "Beğeni yargısı", Hashtag: "#beğeni"},
	},
	Angles: []string{
		"Sergi dramaturjisi",
		"Koleksiyon okuması",
		"Duvar metni ve etiket dili",
		"Mekân, ışık ve ritim",
		"Arşivden bugüne",
		"Dijital kürasyon",
		"Kurumsal eleştiri",
		"İzleyici rotası",
	},
	VideoTemplates: []VideoTemplate{
		{
			Title: "{philosopher} 60 saniyede: {concept}",
			Hook:  "{greeting} {philosopher}, {theme} hakkında bugün hâlâ {emphasis} bir şey söylüyor.",
			TalkingPoints: []string{
				"{concept} kavramını tek cümlede tanımla.",
				"Kavramı {angle} pratiğinden bir örnekle bağla.",
				"İzleyiciye bir sonraki sergi ziyaretinde deneyeceği bir bakış önerisi bırak.",
			},
			CallToAction: "Kaydet ve bir sonraki müze gezinde bu soruyu yanında taşı.",
			Structure: []string{
				"0-3 sn: kışkırtıcı açılış cümlesi",
				"3-20 sn: kavramın kısa tanımı",
				"20-45 sn: eser ya da sergi örneği",
				"45-60 sn: izleyiciye dönen soru",
			},
			OpeningQuestion: "{theme} dendiğinde aklına gelen ilk eser hangisi?",
			Visual:          "Yakın plan eser detayları, kavram adını taşıyan büyük tipografi",
			Audio:           "Minimal piyano altlığı, cümle vuruşlarında kısa sessizlikler",
		},
		{
			Title: "Küratörün defterinden: {angle}",
			Hook:  "Bir serginin asıl hikâyesi duvarda değil, {angle} kararlarında saklı.",
			TalkingPoints: []string{
				"{angle} sürecinde verilen görünmez kararları sırala.",
				"{philosopher} düşüncesiyle bu kararlardan birini yeniden oku.",
				"{theme} temasının mekâna nasıl taşındığını göster.",
			},
			CallToAction: "Yorumlarda en son gördüğün sergideki en {emphasis} kararı yaz.",
			Structure: []string{
				"Sahne arkası açılış planı",
				"Karar noktası: neden bu eser, neden burada?",
				"Felsefi bağlantı",
				"Kapanış: izleyiciye görev",
			},
			OpeningQuestion: "Bir eserin duvardaki yeri anlamını değiştirir mi?",
			Visual:          "Sergi mekânında el kamerasıyla yürüyüş, kat planı üzerine çizimler",
			Audio:           "Ortam sesi ve alçak frekanslı ambient katman",
		},
		{
			Title: "Yanlış bilinen: {concept}",
			Hook:  "{concept} hakkında duyduğun en yaygın cümle muhtemelen eksik.",
			TalkingPoints: []string{
				"Yaygın yanlış anlamayı açıkça söyle.",
				"{philosopher} metninden kısa bir alıntıyla düzelt.",
				"Düzeltilmiş okumayı {theme} üzerinden güncel bir örneğe uygula.",
			},
			CallToAction: "Bu düzeltmeye ihtiyacı olan birine gönder.",
			Structure: []string{
				"Mit: ekranda büyük yazı",
				"Kırılma: 'aslında' anı",
				"Kaynak: alıntı kartı",
				"Güncel örnek ve kapanış",
			},
			OpeningQuestion: "Sence {concept} bugün en çok nerede yanlış kullanılıyor?",
			Visual:          "Bölünmüş ekran: mit ve gerçek, alıntı için kâğıt dokulu kart",
			Audio:           "Tempolu perküsyon, kırılma anında ani kesme",
		},
		{
			Title: "Bir eser, bir soru: {theme}",
			Hook:  "{greeting} Tek bir esere otuz saniye bakmaya ne dersin?",
			TalkingPoints: []string{
				"Eseri betimleyerek yavaş bakmaya davet et.",
				"{philosopher} ile esere {emphasis} bir soru sor.",
				"Cevabı izleyiciye bırak, {angle} ile bağla.",
			},
			CallToAction: "Cevabını yorumlara yaz, en ilginç yanıtları hikâyede paylaşacağız.",
			Structure: []string{
				"Yavaş zoom ile eser girişi",
				"Betimleme: renk, ölçek, malzeme",
				"Felsefi soru",
				"Sessiz bakış anı ve soru kartı",
			},
			OpeningQuestion: "Bu esere bakarken bedeninde ne değişiyor?",
			Visual:          "Tek plan yavaş zoom, doğal ışık, en az metin",
			Audio:           "Oda tonu ve nefes alan uzun bir drone",
		},
		{
			Title: "{philosopher} bugün müzeye girseydi",
			Hook:  "{philosopher} bugünkü bir sergide ilk neye itiraz ederdi?",
			TalkingPoints: []string{
				"Filozofun temel sorusunu günümüz diline çevir.",
				"{theme} etrafındaki güncel bir sergi pratiğini eleştir.",
				"{angle} için {emphasis} bir alternatif öner.",
			},
			CallToAction: "Takip et; her gün bir filozofu sergi salonuna davet ediyoruz.",
			Structure: []string{
				"Kurgu giriş: filozof kapıda",
				"İlk gözlem",
				"İtiraz ve gerekçe",
				"Alternatif öneri",
			},
			OpeningQuestion: "Sence {philosopher} hangi eserin önünde en uzun süre dururdu?",
			Visual:          "Arşiv portresi ile güncel sergi görüntülerinin kolajı",
			Audio:           "Hafif ironik yaylılar, anlatıcı sesi önde",
		},
		{
			Title: "3 adımda {angle}",
			Hook:  "Küratör gibi bakmak için üç adım yeter.",
			TalkingPoints: []string{
				"Adım 1: bağlamı oku, {theme} nerede başlıyor?",
				"Adım 2: {concept} kavramıyla eseri sorgula.",
				"Adım 3: kendi küçük sergini kur, {emphasis} bir başlık seç.",
			},
			CallToAction: "Kaydet ve hafta sonu kendi üç eserlik sergini kur.",
			Structure: []string{
				"Başlık kartı",
				"Adım 1 görseli",
				"Adım 2 görseli",
				"Adım 3 ve davet",
			},
			OpeningQuestion: "Üç eserlik bir sergi kursan hangi eserleri seçerdin?",
			Visual:          "Masa üstü flat-lay, kartpostallar ve notlarla adım adım düzenleme",
			Audio:           "Hafif lo-fi ritim, adım geçişlerinde kâğıt sesi",
		},
	},
	CarouselTemplates: []CarouselTemplate{
		{
			Title: "{concept}: kavram haritası",
			Hook:  "{theme} temasını tek bir kavram üzerinden açan altı slayt.",
			TalkingPoints: []string{
				"{philosopher} bu kavramı hangi soruya cevap olarak geliştirdi?",
				"Kavramın {angle} pratiğine yansıması",
				"Bugünkü izleyici için anlamı",
			},
			CallToAction: "Kaydet, sergi gezmeden önce tekrar bak.",
			Format: []string{
				"Kapak: kavram adı ve filozof",
				"Soru: kavram neden doğdu?",
				"Tanım: tek cümle",
				"Eser örneği",
				"Küratöryel yansıma",
				"Özet ve tartışma sorusu",
			},
			Insight: "{concept}, {theme} temasını izleyicinin bakışıyla yeniden kurmanın {emphasis} bir yolu.",
		},
		{
			Title: "Sergi okuma rehberi: {angle}",
			Hook:  "Bir sonraki sergide kimsenin bakmadığı yere bakacaksın.",
			TalkingPoints: []string{
				"Girişteki duvar metnini oku ve tonunu not et.",
				"Eserlerin sıralamasında {theme} izini sür.",
				"{philosopher} sorusunu rotanın sonunda sor.",
			},
			CallToAction: "Arkadaşını etiketle, birlikte sergi okuyun.",
			Format: []string{
				"Kapak: rehber başlığı",
				"Giriş metni",
				"Rota ve ritim",
				"Işık ve mekân",
				"Filozofun sorusu",
				"Kontrol listesi",
			},
			Insight: "Sergi bir metindir; {angle} onun dilbilgisidir.",
		},
		{
			Title: "Alıntı ve yorum: {philosopher}",
			Hook:  "Tek bir alıntı, {theme} üzerine bir hafta düşünmeye yeter.",
			TalkingPoints: []string{
				"Alıntıyı bağlamıyla ver.",
				"{concept} ile ilişkisini açıkla.",
				"Bugünkü bir eserle {emphasis} bir karşılaştırma yap.",
			},
			CallToAction: "Hangi eseri eşleştirirdin? Yorumda paylaş.",
			Format: []string{
				"Kapak: alıntı",
				"Bağlam: kim, ne zaman, neden",
				"Kavram açıklaması",
				"Eser eşleştirmesi",
				"Soru kartı",
			},
			Insight: "{philosopher} bize {theme} üzerine hazır bir cevap değil, {emphasis} bir soru bırakıyor.",
		},
		{
			Title: "Önce / sonra: {theme}",
			Hook:  "Aynı eser, iki farklı küratöryel karar.",
			TalkingPoints: []string{
				"Birinci yerleştirme ve yarattığı anlam",
				"İkinci yerleştirme ve değişen okuma",
				"{philosopher} hangisini savunurdu?",
			},
			CallToAction: "Sen hangisini seçerdin? A mı, B mi?",
			Format: []string{
				"Kapak: A / B",
				"Yerleştirme A",
				"Yerleştirme B",
				"Farkın analizi",
				"Felsefi yorum",
				"Oylama kartı",
			},
			Insight: "{angle}, eserin söylediğini değiştirmeden nasıl duyulduğunu değiştirir.",
		},
		{
			Title: "Sözlük: {concept}",
			Hook:  "Sanat felsefesi sözlüğüne bugün bir kelime ekliyoruz.",
			TalkingPoints: []string{
				"Kelimenin kökeni ve {philosopher} ile ilişkisi",
				"{theme} bağlamında bir kullanım örneği",
				"Küratöryel metinlerde {emphasis} bir kullanım önerisi",
			},
			CallToAction: "Sözlük serisini takip et, her hafta yeni bir kavram.",
			Format: []string{
				"Kapak: kelime",
				"Köken",
				"Tanım",
				"Örnek cümle",
				"Küratöryel kullanım",
			},
			Insight: "Doğru kavram, {theme} hakkında konuşmayı {emphasis} kılar.",
		},
	},
	Hashtags: []string{
		"#sanatfelsefesi",
		"#kürasyon",
		"#estetik",
		"#çağdaşsanat",
		"#sanattarihi",
		"#müze",
		"#sergi",
	},
	Lexicon: toneLexicon,
}

func init() {
	if err := defaultPools.Validate(); err != nil {
		panic(fmt.Sprintf("content: default pools are invalid: %v", err))
	}
}

// Default returns the built-in pools.
func Default() *Pools {
	return defaultPools
}
