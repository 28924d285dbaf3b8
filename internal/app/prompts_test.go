package app

import (
	"strings"
	"testing"

	"otasuke/internal/domain"
)

func TestFlightPrompt_Deterministic(t *testing.T) {
	req := domain.FlightSearchRequest{
		Route:        "鹿児島→東京",
		Timing:       "来週",
		TimeOfDay:    "午前",
		UserLocation: "指宿市",
		AgeGroup:     "80代",
	}
	p1 := flightPrompt(req)
	p2 := flightPrompt(req)
	if p1 != p2 {
		t.Fatalf("prompt is not deterministic")
	}
	if !strings.Contains(p1.System, "指宿市") || !strings.Contains(p1.System, "80代") {
		t.Fatalf("system prompt missing substitutions:\n%s", p1.System)
	}
	if !strings.Contains(p1.User, "鹿児島→東京") || !strings.Contains(p1.User, "来週") {
		t.Fatalf("user prompt missing substitutions:\n%s", p1.User)
	}
	// the template embeds a literal example of the required JSON shape
	if !strings.Contains(p1.User, `"recommendedAirline"`) {
		t.Fatalf("user prompt missing JSON shape example")
	}
}

func TestGoodsPrompt_TransportRadius(t *testing.T) {
	base := domain.GoodsSearchRequest{
		Product:      "お米",
		Priority:     "一番安い",
		UserLocation: "指宿市",
		AgeGroup:     "80代",
	}

	cases := []struct {
		transport string
		radius    string
	}{
		{"徒歩", "徒歩で行ける範囲（半径500m以内）"},
		{"自転車", "自転車で行ける範囲（半径2-3km以内）"},
		{"車", "車で行ける範囲（制限なし）"},
		{"バス", "車で行ける範囲（制限なし）"}, // unknown transport falls back to driving
	}
	for _, tc := range cases {
		req := base
		req.Transport = tc.transport
		p := goodsPrompt(req)
		if !strings.Contains(p.System, tc.radius) {
			t.Fatalf("transport %q: system prompt missing radius %q", tc.transport, tc.radius)
		}
		if !strings.Contains(p.User, tc.radius) {
			t.Fatalf("transport %q: user prompt missing radius %q", tc.transport, tc.radius)
		}
	}
}

func TestScriptPrompt_DefaultsAndDiscount(t *testing.T) {
	deal := domain.Deal{
		UserID:       domain.UserMother,
		StoreName:    "タイヨー指宿店",
		ProductName:  "お米 5kg",
		RegularPrice: 2480,
		SalePrice:    1980,
	}
	p := scriptPrompt(deal)
	if !strings.Contains(p.User, "値引き額: 500円") {
		t.Fatalf("discount not derived from prices:\n%s", p.User)
	}
	if !strings.Contains(p.User, "おすすめポイント: 特になし") {
		t.Fatalf("missing recommendation point default:\n%s", p.User)
	}
	if !strings.Contains(p.User, "距離: 近く") {
		t.Fatalf("missing distance default:\n%s", p.User)
	}
	if !strings.Contains(p.User, "お母様（指宿）") {
		t.Fatalf("missing user label:\n%s", p.User)
	}

	deal.UserID = domain.UserGibo
	if !strings.Contains(scriptPrompt(deal).User, "義母様（旭川）") {
		t.Fatalf("missing gibo label")
	}
}
