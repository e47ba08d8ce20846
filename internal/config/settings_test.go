package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/reelbite/reelbite/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestIDSetRoundTrip(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if len(settings.IDSet(SetLiked)) != 0 {
		t.Error("Expected empty liked set initially")
	}

	settings.WriteIDSet(SetLiked, map[string]bool{"r1": true, "r2": true})

	set := settings.IDSet(SetLiked)
	if len(set) != 2 || !set["r1"] || !set["r2"] {
		t.Errorf("Expected {r1, r2}, got %v", set)
	}

	// The two kinds are independent
	if len(settings.IDSet(SetSaved)) != 0 {
		t.Error("Expected saved set to stay empty")
	}
}

func TestAddIsIdempotent(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.Add(SetSaved, "r1")
	settings.Add(SetSaved, "r1")
	settings.Add(SetSaved, "r1")

	set := settings.IDSet(SetSaved)
	if len(set) != 1 {
		t.Errorf("Expected exactly one membership after repeated adds, got %d", len(set))
	}

	settings.Remove(SetSaved, "r1")
	if len(settings.IDSet(SetSaved)) != 0 {
		t.Error("Expected empty set after remove")
	}
}

func TestCountBindingTracksWrites(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	count := settings.CountBinding(SetSaved)
	if v, _ := count.Get(); v != 0 {
		t.Errorf("Expected initial count 0, got %d", v)
	}

	settings.Add(SetSaved, "r1")
	settings.Add(SetSaved, "r2")

	if v, _ := count.Get(); v != 2 {
		t.Errorf("Expected count 2 after two adds, got %d", v)
	}

	settings.ClearIDSet(SetSaved)
	if v, _ := count.Get(); v != 0 {
		t.Errorf("Expected count 0 after clear, got %d", v)
	}
}

func TestThemePreference(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if pref := settings.GetThemePreference(); pref != DefaultThemePreference {
		t.Errorf("Expected default theme %s, got %s", DefaultThemePreference, pref)
	}

	settings.SetThemePreference(ThemeDark)
	if pref := settings.GetThemePreference(); pref != ThemeDark {
		t.Errorf("Expected theme %s, got %s", ThemeDark, pref)
	}

	options := settings.GetThemeOptions()
	if len(options) != 3 {
		t.Fatalf("Expected 3 theme options, got %d", len(options))
	}
}

func TestCart(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	item := &model.ReelItem{ID: "r1", Title: "Vada Pav", Price: 40}

	settings.AddToCart(item)
	settings.AddToCart(item)

	lines := settings.Cart()
	if len(lines) != 1 {
		t.Fatalf("Expected one cart line, got %d", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("Expected qty 2, got %d", lines[0].Qty)
	}
	if model.CartSubtotal(lines) != 80 {
		t.Errorf("Expected subtotal 80, got %v", model.CartSubtotal(lines))
	}
	if model.CartQuantity(lines) != 2 {
		t.Errorf("Expected quantity 2, got %d", model.CartQuantity(lines))
	}

	settings.ClearCart()
	if len(settings.Cart()) != 0 {
		t.Error("Expected empty cart after clear")
	}
}

func TestRemoveFromCart(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	item := &model.ReelItem{ID: "r1", Title: "Misal", Price: 60}
	settings.AddToCart(item)
	settings.AddToCart(item)

	settings.RemoveFromCart("r1")
	lines := settings.Cart()
	if len(lines) != 1 || lines[0].Qty != 1 {
		t.Fatalf("Expected one line with qty 1, got %v", lines)
	}

	settings.RemoveFromCart("r1")
	if len(settings.Cart()) != 0 {
		t.Error("Expected line dropped at qty zero")
	}

	// Unknown ids are a no-op.
	settings.RemoveFromCart("r9")
	if len(settings.Cart()) != 0 {
		t.Error("Expected cart unchanged for unknown id")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.Session().Role != model.RoleGuest {
		t.Error("Expected guest session by default")
	}

	settings.SetSession(model.Session{
		Role:      model.RolePartner,
		PartnerID: "p-1",
		Name:      "Masala House",
		Email:     "owner@masala.example",
		AvatarURL: "https://cdn.example/p-1.png",
	})

	session := settings.Session()
	if session.Role != model.RolePartner || session.PartnerID != "p-1" {
		t.Errorf("Expected stored partner session, got %+v", session)
	}
	if session.AvatarURL != "https://cdn.example/p-1.png" {
		t.Errorf("Expected avatar to round-trip, got %q", session.AvatarURL)
	}

	settings.ClearProfile()
	if settings.Session().Authenticated() {
		t.Error("Expected unauthenticated session after clear")
	}
}
