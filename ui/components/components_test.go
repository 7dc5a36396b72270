package components

import (
	"strings"
	"testing"

	"github.com/Rorical/ChairFinder/internal/models"
)

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		8.2:  "8.2",
		26:   "26",
		16.5: "16.5",
		0:    "0",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderCard_Fields(t *testing.T) {
	out := RenderCard(models.Card{
		Name:         "Model A",
		Manufacturer: "Acme",
		Weight:       8.2,
		SeatWidth:    26,
		NoImage:      true,
		Keywords:     []string{"lightweight", "narrow"},
	}, 80)

	for _, want := range []string{"Model A", "Acme", "8.2kg", "26cm", "lightweight", "narrow", NoImageMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCard_WithImage(t *testing.T) {
	out := RenderCard(models.Card{Name: "B", ImageURL: "http://chairs/b.png"}, 80)
	if !strings.Contains(out, "http://chairs/b.png") {
		t.Errorf("image url not rendered:\n%s", out)
	}
	if strings.Contains(out, NoImageMarker) {
		t.Errorf("card with image rendered the no-image marker")
	}
}

func TestRenderCards_Order(t *testing.T) {
	out := RenderCards([]models.Card{{Name: "first", NoImage: true}, {Name: "second", NoImage: true}}, 80)
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Errorf("cards out of order:\n%s", out)
	}
}

func TestRenderResults_HiddenUntilRevealed(t *testing.T) {
	cards := []models.Card{{Name: "A", NoImage: true}}
	if out := RenderResults(cards, false, 0, 80, 40); out != "" {
		t.Errorf("hidden results rendered %q", out)
	}
	if out := RenderResults(cards, true, 0, 80, 40); !strings.Contains(out, "Recommendations (1)") {
		t.Errorf("header missing:\n%s", out)
	}
}

func TestRenderResults_ClampsOffset(t *testing.T) {
	cards := make([]models.Card, 10)
	for i := range cards {
		cards[i] = models.Card{Name: "card", NoImage: true}
	}
	out := RenderResults(cards, true, 10000, 80, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != ResultsViewportHeight(20)+1 {
		t.Errorf("rendered %d lines, want %d", len(lines), ResultsViewportHeight(20)+1)
	}
}

func TestRenderNotice(t *testing.T) {
	if RenderNotice(nil, 80) != "" {
		t.Error("nil notice should render empty")
	}
	out := RenderNotice(&models.Notice{Kind: models.NoticeApplication, Text: "no matches"}, 80)
	if !strings.Contains(out, "no matches") {
		t.Errorf("notice text missing: %q", out)
	}
}

func TestRenderQuickBar_ListsAllTypes(t *testing.T) {
	out := RenderQuickBar()
	for _, q := range models.QuickTypes {
		if !strings.Contains(out, q.Label()) {
			t.Errorf("quick bar missing %q", q.Label())
		}
	}
}
