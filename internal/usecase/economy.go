package usecase

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

// Validation errors: command preconditions unmet, no state change occurred.
var (
	ErrHealthFull     = errors.New("health is already full")
	ErrNotEnoughCoins = errors.New("not enough coins")
	ErrDailyClaimed   = errors.New("daily reward already claimed today")
	ErrNotForSale     = errors.New("item is not purchasable")
	ErrUnknownItem    = errors.New("unknown item")
	ErrItemNotOwned   = errors.New("item not in inventory")
	ErrCannotEquip    = errors.New("item cannot be equipped or used")
	ErrLevelTooLow    = errors.New("level too low")
)

// Heal restores the player to full HP for a fixed coin price. Rejected when
// already at full health or short on coins; rejection mutates nothing.
func Heal(p *domain.Player) error {
	if p.HP >= p.MaxHP {
		return ErrHealthFull
	}
	if p.Coins < domain.HealCost {
		return ErrNotEnoughCoins
	}

	p.HP = p.MaxHP
	p.Coins -= domain.HealCost
	p.Touch()
	return nil
}

// ClaimDaily grants the daily coin reward, gated by calendar-day equality
// against the stored claim date. Returns the coins granted.
func ClaimDaily(p *domain.Player, now time.Time) (int, error) {
	today := now.Format(domain.DateFormat)
	if p.DailyDate == today {
		return 0, ErrDailyClaimed
	}

	reward := domain.DailyBaseReward + p.Level*domain.DailyLevelBonus
	if p.VIP {
		reward += domain.DailyVIPBonus
	}

	p.Coins += reward
	p.DailyDate = today
	p.DailyClaimed = true
	p.Touch()

	logger.Log.WithFields(logrus.Fields{
		"component": "economy",
		"player_id": p.UserID,
		"reward":    reward,
		"vip":       p.VIP,
	}).Info("Daily reward claimed.")
	return reward, nil
}

// Buy purchases a catalog item, appending it to the inventory. Duplicates
// are allowed and expected for potions.
func Buy(p *domain.Player, item domain.Item) error {
	if item.Price <= 0 {
		return ErrNotForSale
	}
	if p.Coins < item.Price {
		return ErrNotEnoughCoins
	}

	p.Coins -= item.Price
	p.Inventory = append(p.Inventory, item.Name)
	p.Touch()
	return nil
}

// Equip routes an owned item by category: gear fills the matching equipment
// slot, a potion is consumed instead, removing the first matching inventory
// entry and healing up to max HP.
func Equip(p *domain.Player, itemName string, state *domain.GameState) error {
	item, ok := state.FindItem(itemName)
	if !ok {
		return ErrUnknownItem
	}
	if !ownsItem(p, itemName) {
		return ErrItemNotOwned
	}

	switch item.Category {
	case domain.CategoryWeapon:
		p.EquippedWeapon = itemName
	case domain.CategoryArmor:
		p.EquippedArmor = itemName
	case domain.CategoryAccessory:
		p.EquippedAccessory = itemName
	case domain.CategoryPotion:
		p.HP += item.Heal
		p.ClampHP()
		removeFirst(p, itemName)
	default:
		return ErrCannotEquip
	}

	p.Touch()
	return nil
}

func ownsItem(p *domain.Player, name string) bool {
	for _, it := range p.Inventory {
		if it == name {
			return true
		}
	}
	return false
}

// removeFirst removes only the first matching entry so potion duplicates
// survive a single use.
func removeFirst(p *domain.Player, name string) {
	for i, it := range p.Inventory {
		if it == name {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return
		}
	}
}
