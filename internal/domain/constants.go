package domain

// ==== Economy Constants ====

const (
	// HealCost is the coin price of a full heal.
	HealCost = 20

	// DailyBaseReward is the base coin grant for a daily claim.
	DailyBaseReward = 50

	// DailyVIPBonus is added to the daily claim for VIP players.
	DailyVIPBonus = 150

	// DailyLevelBonus is added to the daily claim per player level.
	DailyLevelBonus = 5

	// KillCoinReward is the fixed coin drop for defeating any monster.
	KillCoinReward = 50
)

// ==== Progression Constants ====

const (
	// XPPerLevel scales the level-up threshold: level * XPPerLevel.
	XPPerLevel = 100

	// LevelUpMaxHPBonus is granted once per level-up transition.
	LevelUpMaxHPBonus = 20

	// LevelUpDamageBonus is granted once per level-up transition.
	LevelUpDamageBonus = 5

	// DefeatRecoveryPercent of max HP is restored after a defeat.
	DefeatRecoveryPercent = 10
)

// ==== Boss Scaling ====

const (
	// BossHPMultiplier doubles the base monster's HP for a dungeon boss.
	BossHPMultiplier = 2

	// BossDamageMultiplier scales the base monster's damage cap.
	BossDamageMultiplier = 1.5
)

// DefaultState seeds a fresh game document with the reference catalogs and a
// single system-owned starter player.
func DefaultState() *GameState {
	return &GameState{
		Players: []*Player{NewPlayer("777000", "MimiMaster")},
		Items: []Item{
			{Name: "🪵 Wood Sword", Category: CategoryWeapon, Damage: 5, Price: 100, Rarity: RarityCommon},
			{Name: "🔥 Flame Katana", Category: CategoryWeapon, Damage: 30, Price: 1200, Rarity: RarityRare},
			{Name: "⚡ Thunder Spear", Category: CategoryWeapon, Damage: 55, Price: 2500, Rarity: RarityEpic},
			{Name: "💀 Soul Reaper", Category: CategoryWeapon, Damage: 80, Price: 5000, Rarity: RarityLegendary},
			{Name: "🛡️ Iron Armor", Category: CategoryArmor, HP: 50, Price: 300, Rarity: RarityCommon},
			{Name: "🧪 Small Potion", Category: CategoryPotion, Heal: 20, Price: 50, Rarity: RarityCommon},
		},
		Monsters: []Monster{
			{Name: "👹 Goblin", Level: 1, HP: 50, Damage: 5, XP: 10, DropItem: "👂 Goblin Ear"},
			{Name: "🐺 Wolf", Level: 3, HP: 120, Damage: 15, XP: 25, DropItem: "🦷 Wolf Fang"},
			{Name: "🐉 Dragon", Level: 15, HP: 1000, Damage: 80, XP: 200, DropItem: "🐲 Dragon Scale"},
		},
		Pets: []Pet{
			{Name: "🐰 Forest Bunny", Damage: 5, EvolveLevel: 10, NextForm: "🌑 Shadow Bunny", Owner: "System"},
		},
		Dungeons: []Dungeon{
			{Name: "🕳️ Dark Cave", LevelReq: 5, Boss: "Cave Troll", RewardXP: 100},
		},
	}
}
