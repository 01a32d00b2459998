package display

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gauthierbraillon/curaplan/internal/planner"
)

func sampleDay() planner.DailyPlan {
	return planner.DailyPlan{
		Date:            "2024-01-01",
		Summary:         "Bir an dur ve bak: Aura ve yeniden üretim açılıyor.",
		MainPhilosopher: "Walter Benjamin",
		FocusTheme:      "Aura ve yeniden üretim",
		CuratorialAngle: "Dijital kürasyon",
		Posts: []planner.Post{
			{
				ID:            "2024-01-01-1",
				Kind:          planner.KindShortVideo,
				Title:         "Walter Benjamin 60 saniyede: aura",
				Hook:          "Aura hâlâ burada mı?",
				TalkingPoints: []string{"Kavramı tanımla."},
				CallToAction:  "Kaydet.",
				Hashtags:      []string{"#aura", "#sanatfelsefesi"},
				Video: &planner.VideoDetails{
					Structure:       []string{"0-3 sn: açılış"},
					OpeningQuestion: "İlk eser hangisi?",
					Visual:          "Yakın plan",
					Audio:           "Piyano",
				},
			},
			{
				ID:           "2024-01-01-3",
				Kind:         planner.KindCarousel,
				Title:        "Sözlük: aura",
				Hook:         "Bir kelime ekliyoruz.",
				CallToAction: "Takip et.",
				Hashtags:     []string{"#aura"},
				Carousel: &planner.CarouselDetails{
					Format:  []string{"Kapak: kelime"},
					Insight: "Doğru kavram konuşmayı kolaylaştırır.",
				},
			},
		},
	}
}

func TestAC300_TerminalPlan_ShowsDayMetadata(t *testing.T) {
	output := NewTerminalFormatter().FormatDay(sampleDay())

	for _, want := range []string{"2024-01-01", "Walter Benjamin", "Aura ve yeniden üretim", "Dijital kürasyon"} {
		if !strings.Contains(output, want) {
			t.Errorf("user should see %q in the day card", want)
		}
	}
}

func TestAC301_TerminalPlan_ShowsVideoDetails(t *testing.T) {
	output := NewTerminalFormatter().FormatPost(sampleDay().Posts[0])

	for _, want := range []string{"REELS", "60 saniyede", "0-3 sn: açılış", "İlk eser hangisi?", "Yakın plan", "Piyano", "Kavramı tanımla."} {
		if !strings.Contains(output, want) {
			t.Errorf("user should see %q in the video card, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Merkez içgörü") {
		t.Error("video card should not show carousel fields")
	}
}

func TestAC302_TerminalPlan_ShowsCarouselDetails(t *testing.T) {
	output := NewTerminalFormatter().FormatPost(sampleDay().Posts[1])

	for _, want := range []string{"KARUSEL / STATİK", "Kapak: kelime", "Merkez içgörü", "Doğru kavram"} {
		if !strings.Contains(output, want) {
			t.Errorf("user should see %q in the carousel card, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Açılış sorusu") {
		t.Error("carousel card should not show video fields")
	}
}

func TestAC303_TerminalPlan_ShowsHashtagsAndCallToAction(t *testing.T) {
	output := NewTerminalFormatter().FormatPost(sampleDay().Posts[0])

	if !strings.Contains(output, "#aura") || !strings.Contains(output, "#sanatfelsefesi") {
		t.Error("user should see every hashtag")
	}
	if !strings.Contains(output, "Kaydet.") {
		t.Error("user should see the call to action")
	}
}

func TestAC304_TerminalPlan_ShowsMultipleDays(t *testing.T) {
	first := sampleDay()
	second := sampleDay()
	second.Date = "2024-01-02"

	output := NewTerminalFormatter().FormatSchedule([]planner.DailyPlan{first, second})

	if !strings.Contains(output, "2024-01-01") || !strings.Contains(output, "2024-01-02") {
		t.Error("user should see every day of the schedule")
	}
	if !strings.Contains(output, "2 gün") {
		t.Errorf("user should see the plan length, got:\n%s", output)
	}
}

func TestAC305_TerminalPlan_ShowsEmptyScheduleMessage(t *testing.T) {
	output := NewTerminalFormatter().FormatSchedule(nil)

	if !strings.Contains(strings.ToLower(output), "yok") {
		t.Error("user should see a message indicating there is no plan")
	}
}

func TestAC306_TerminalPlan_TruncatesLongTextByRunes(t *testing.T) {
	formatter := NewTerminalFormatter()
	longText := "Şiirsel bakış: çağdaş sanatın ışığında görünmeyeni göstermek üzerine"

	truncated := formatter.TruncateText(longText, 20)

	if utf8.RuneCountInString(truncated) > 20 {
		t.Errorf("user should see at most 20 characters, got %d", utf8.RuneCountInString(truncated))
	}
	if !utf8.ValidString(truncated) {
		t.Error("truncation should not split a multi-byte character")
	}
	if !strings.HasSuffix(truncated, "...") {
		t.Error("user should see ellipsis indicating text was truncated")
	}
}

func TestAC306_TerminalPlan_PreservesShortText(t *testing.T) {
	if got := NewTerminalFormatter().TruncateText("Kısa", 20); got != "Kısa" {
		t.Errorf("user should see full text when under limit, got: %s", got)
	}
}

func TestAC307_TerminalPlan_OverviewHasOneLinePerDay(t *testing.T) {
	first := sampleDay()
	second := sampleDay()
	second.Date = "2024-01-02"

	output := NewTerminalFormatter().FormatOverview([]planner.DailyPlan{first, second}, 30)
	lines := strings.Split(strings.TrimSpace(output), "\n")

	if len(lines) != 2 {
		t.Fatalf("overview should have one line per day, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "2024-01-02") {
		t.Errorf("second line should start with its date, got %s", lines[1])
	}
}

func TestAC308_TerminalPlan_ListsTonesWithActiveMarker(t *testing.T) {
	output := NewTerminalFormatter().FormatTones(planner.ToneAcademic)

	for _, tone := range planner.Tones() {
		if !strings.Contains(output, tone.Label()) {
			t.Errorf("user should see tone label %s", tone.Label())
		}
	}
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "academic") && !strings.Contains(line, "aktif") {
			t.Errorf("active tone should be marked, got: %s", line)
		}
	}
}
