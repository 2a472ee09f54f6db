package domain

import "time"

// DateFormat is the calendar-day format used for daily reward gating.
const DateFormat = "2006-01-02"

// Player is one hero record, keyed by the Telegram user id. The JSON field
// names match the original save document so exported state stays portable.
type Player struct {
	UserID            string   `json:"userId"`
	Username          string   `json:"username"`
	Level             int      `json:"level"`
	XP                int      `json:"xp"`
	Coins             int      `json:"coins"`
	HP                int      `json:"hp"`
	MaxHP             int      `json:"maxHp"`
	Damage            int      `json:"damage"`
	Crit              int      `json:"crit"` // percentage, 0-100
	Heal              int      `json:"heal"`
	Inventory         []string `json:"inventory"`
	EquippedWeapon    string   `json:"equippedWeapon"`
	EquippedArmor     string   `json:"equippedArmor"`
	EquippedAccessory string   `json:"equippedAccessory"`
	Pets              []string `json:"pets"`
	ActivePet         string   `json:"activePet"`
	Guild             string   `json:"guild"`
	Rank              string   `json:"rank"`
	VIP               bool     `json:"vip"`
	DailyClaimed      bool     `json:"dailyClaimed"`
	DailyDate         string   `json:"dailyDate"`
	RegisterDate      string   `json:"registerDate"`
	LastUpdated       string   `json:"lastUpdated"`
}

// NewPlayer builds a fresh player from the starter template with identity
// fields overridden.
func NewPlayer(userID, username string) *Player {
	now := time.Now().Format(time.RFC3339)
	return &Player{
		UserID:            userID,
		Username:          username,
		Level:             1,
		XP:                0,
		Coins:             100,
		HP:                100,
		MaxHP:             100,
		Damage:            10,
		Crit:              5,
		Heal:              0,
		Inventory:         []string{"🪵 Wood Sword", "🧪 Small Potion"},
		EquippedWeapon:    "🪵 Wood Sword",
		EquippedArmor:     "🛡️ Iron Armor",
		EquippedAccessory: "💍 Ring of Luck",
		Pets:              []string{"🐰 Forest Bunny"},
		ActivePet:         "🐰 Forest Bunny",
		Guild:             "DragonSlayers",
		Rank:              "Bronze",
		VIP:               false,
		DailyClaimed:      false,
		DailyDate:         "",
		RegisterDate:      now,
		LastUpdated:       now,
	}
}

// ClampHP enforces 0 <= hp <= maxHp. Call after every mutation that touches
// health.
func (p *Player) ClampHP() {
	if p.HP < 0 {
		p.HP = 0
	}
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// XPThreshold is the experience needed to reach the next level.
func (p *Player) XPThreshold() int {
	return p.Level * XPPerLevel
}

// Touch stamps the last-updated time.
func (p *Player) Touch() {
	p.LastUpdated = time.Now().Format(time.RFC3339)
}
