package usecase

import (
	"testing"
	"time"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
)

func TestHeal(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.HP = 40

		if err := Heal(p); err != nil {
			t.Fatalf("Expected heal to succeed, got %v", err)
		}
		if p.HP != p.MaxHP {
			t.Errorf("Expected full HP, got %d/%d", p.HP, p.MaxHP)
		}
		if p.Coins != 80 {
			t.Errorf("Expected 80 coins after paying 20, got %d", p.Coins)
		}
	})

	t.Run("Rejected at full health", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")

		if err := Heal(p); err != ErrHealthFull {
			t.Fatalf("Expected ErrHealthFull, got %v", err)
		}
		if p.Coins != 100 {
			t.Errorf("Rejection must not mutate: coins %d", p.Coins)
		}
	})

	t.Run("Rejected without coins", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.HP = 40
		p.Coins = 19

		if err := Heal(p); err != ErrNotEnoughCoins {
			t.Fatalf("Expected ErrNotEnoughCoins, got %v", err)
		}
		if p.HP != 40 || p.Coins != 19 {
			t.Errorf("Rejection must not mutate: hp=%d coins=%d", p.HP, p.Coins)
		}
	})
}

func TestClaimDaily(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	p := domain.NewPlayer("1", "hero")
	p.Level = 3
	p.Coins = 0

	// First claim: 50 base + 0 vip + 3*5 level bonus
	reward, err := ClaimDaily(p, now)
	if err != nil {
		t.Fatalf("Expected first claim to succeed, got %v", err)
	}
	if reward != 65 {
		t.Errorf("Expected reward 65, got %d", reward)
	}
	if p.Coins != 65 {
		t.Errorf("Expected 65 coins, got %d", p.Coins)
	}
	if p.DailyDate != "2025-06-15" {
		t.Errorf("Expected dailyDate set to today, got %q", p.DailyDate)
	}
	if !p.DailyClaimed {
		t.Error("Expected dailyClaimed flag set")
	}

	// Second claim the same day is rejected with zero coin change
	if _, err := ClaimDaily(p, now.Add(2*time.Hour)); err != ErrDailyClaimed {
		t.Fatalf("Expected ErrDailyClaimed, got %v", err)
	}
	if p.Coins != 65 {
		t.Errorf("Rejected claim must not change coins, got %d", p.Coins)
	}

	// The following day succeeds again
	if _, err := ClaimDaily(p, now.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("Expected next-day claim to succeed, got %v", err)
	}
	if p.Coins != 130 {
		t.Errorf("Expected 130 coins after second claim, got %d", p.Coins)
	}
}

func TestClaimDaily_VIPBonus(t *testing.T) {
	p := domain.NewPlayer("1", "hero")
	p.Level = 1
	p.VIP = true
	p.Coins = 0

	reward, err := ClaimDaily(p, time.Now())
	if err != nil {
		t.Fatalf("Expected claim to succeed, got %v", err)
	}
	// 50 base + 150 vip + 5 level bonus
	if reward != 205 {
		t.Errorf("Expected VIP reward 205, got %d", reward)
	}
}

func TestBuy(t *testing.T) {
	katana := domain.Item{Name: "🔥 Flame Katana", Category: domain.CategoryWeapon, Price: 50}

	t.Run("Rejected without coins", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.Coins = 40
		bagSize := len(p.Inventory)

		if err := Buy(p, katana); err != ErrNotEnoughCoins {
			t.Fatalf("Expected ErrNotEnoughCoins, got %v", err)
		}
		if p.Coins != 40 || len(p.Inventory) != bagSize {
			t.Error("Rejection must not mutate coins or inventory")
		}
	})

	t.Run("Success", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.Coins = 50

		if err := Buy(p, katana); err != nil {
			t.Fatalf("Expected buy to succeed, got %v", err)
		}
		if p.Coins != 0 {
			t.Errorf("Expected 0 coins, got %d", p.Coins)
		}
		if p.Inventory[len(p.Inventory)-1] != katana.Name {
			t.Error("Expected item appended to inventory")
		}
	})

	t.Run("Duplicates allowed", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.Coins = 100
		potion := domain.Item{Name: "🧪 Small Potion", Category: domain.CategoryPotion, Heal: 20, Price: 50}

		if err := Buy(p, potion); err != nil {
			t.Fatal(err)
		}
		if err := Buy(p, potion); err != nil {
			t.Fatal(err)
		}

		count := 0
		for _, it := range p.Inventory {
			if it == potion.Name {
				count++
			}
		}
		// Starter bag already holds one
		if count != 3 {
			t.Errorf("Expected 3 potions, got %d", count)
		}
	})

	t.Run("Price zero is not purchasable", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		if err := Buy(p, domain.Item{Name: "👂 Goblin Ear"}); err != ErrNotForSale {
			t.Errorf("Expected ErrNotForSale, got %v", err)
		}
	})
}

func TestEquip(t *testing.T) {
	state := domain.DefaultState()

	t.Run("Weapon fills slot", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.Inventory = append(p.Inventory, "🔥 Flame Katana")

		if err := Equip(p, "🔥 Flame Katana", state); err != nil {
			t.Fatalf("Expected equip to succeed, got %v", err)
		}
		if p.EquippedWeapon != "🔥 Flame Katana" {
			t.Errorf("Expected weapon slot set, got %q", p.EquippedWeapon)
		}
	})

	t.Run("Armor fills slot", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.Inventory = append(p.Inventory, "🛡️ Iron Armor")

		if err := Equip(p, "🛡️ Iron Armor", state); err != nil {
			t.Fatal(err)
		}
		if p.EquippedArmor != "🛡️ Iron Armor" {
			t.Errorf("Expected armor slot set, got %q", p.EquippedArmor)
		}
	})

	t.Run("Potion heals and consumes first match only", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.HP = 50
		p.Inventory = []string{"🧪 Small Potion", "🪵 Wood Sword", "🧪 Small Potion"}

		if err := Equip(p, "🧪 Small Potion", state); err != nil {
			t.Fatalf("Expected potion use to succeed, got %v", err)
		}
		if p.HP != 70 {
			t.Errorf("Expected 70 HP after +20 heal, got %d", p.HP)
		}

		count := 0
		for _, it := range p.Inventory {
			if it == "🧪 Small Potion" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Expected exactly one potion consumed, %d remain", count)
		}
		if p.Inventory[0] != "🪵 Wood Sword" {
			t.Error("Expected the first matching entry removed")
		}
	})

	t.Run("Potion heal clamps at max", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		p.HP = 95

		if err := Equip(p, "🧪 Small Potion", state); err != nil {
			t.Fatal(err)
		}
		if p.HP != p.MaxHP {
			t.Errorf("Expected HP clamped to %d, got %d", p.MaxHP, p.HP)
		}
	})

	t.Run("Unknown item", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		if err := Equip(p, "🗡️ Vorpal Blade", state); err != ErrUnknownItem {
			t.Errorf("Expected ErrUnknownItem, got %v", err)
		}
	})

	t.Run("Not owned", func(t *testing.T) {
		p := domain.NewPlayer("1", "hero")
		if err := Equip(p, "💀 Soul Reaper", state); err != ErrItemNotOwned {
			t.Errorf("Expected ErrItemNotOwned, got %v", err)
		}
	})
}
