package engine

import "testing"

func TestPurchaseDeductsAndRecords(t *testing.T) {
	svc, _ := newTestService(t)
	svc.state.Diamonds = 30

	it := svc.CreateShopItem(ShopItemInput{Name: "movie night", Cost: 12, Effect: Delta{Mood: 10}})
	if !svc.Purchase(it.ID) {
		t.Fatalf("purchase refused with sufficient balance")
	}

	if got := svc.Diamonds(); got != 18 {
		t.Fatalf("diamonds = %d, want 18", got)
	}
	if got := svc.CurrentStats().Mood; got != 80 {
		t.Fatalf("mood = %d, want 80", got)
	}
	history := svc.PurchaseHistory()
	if len(history) != 1 || history[0].ItemID != it.ID || history[0].Cost != 12 {
		t.Fatalf("purchase history = %+v", history)
	}
}

func TestPurchaseRefusedWhenBroke(t *testing.T) {
	svc, _ := newTestService(t)
	svc.state.Diamonds = 5

	it := svc.CreateShopItem(ShopItemInput{Name: "spa day", Cost: 50})
	if svc.Purchase(it.ID) {
		t.Fatalf("purchase succeeded with insufficient balance")
	}
	if got := svc.Diamonds(); got != 5 {
		t.Fatalf("diamonds = %d, want 5 (untouched)", got)
	}
	if got := len(svc.PurchaseHistory()); got != 0 {
		t.Fatalf("history entries = %d, want 0", got)
	}
}

func TestQuickActionAppliesAndLogs(t *testing.T) {
	svc, _ := newTestService(t)
	a := svc.CreateQuickAction(QuickActionInput{Name: "deep breath", Effect: Delta{Stress: -10}})

	svc.ApplyQuickAction(a.ID)

	if got := svc.CurrentStats().Stress; got != 20 {
		t.Fatalf("stress = %d, want 20", got)
	}
	history := svc.QuickActionHistory()
	if len(history) != 1 || history[0].QuickActionID != a.ID {
		t.Fatalf("quick action history = %+v", history)
	}
}
