package domain

// Rarity orders item drops from Common up to Mythic.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Item categories. Weapon, Armor and Accessory are equippable; Potion is
// consumed on use; Utility items just sit in the bag.
const (
	CategoryWeapon    = "Weapon"
	CategoryArmor     = "Armor"
	CategoryAccessory = "Accessory"
	CategoryPotion    = "Potion"
	CategoryUtility   = "Utility"
)

// Item is a static catalog entry. Price 0 means not purchasable.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Damage   int    `json:"damage,omitempty"`
	Crit     int    `json:"crit,omitempty"`
	HP       int    `json:"hp,omitempty"`
	Heal     int    `json:"heal,omitempty"`
	Price    int    `json:"price"`
	Rarity   Rarity `json:"rarity"`
}

// Monster is a combat opponent. Damage is the upper bound of a uniform random
// hit, not a fixed value; it is fractional because dungeon bosses scale it by
// 1.5. DropItem is catalog flavor only, nothing grants it yet.
type Monster struct {
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	HP       int     `json:"hp"`
	Damage   float64 `json:"damage"`
	XP       int     `json:"xp"`
	DropItem string  `json:"dropItem"`
}

// Pet is a companion that can evolve at a level threshold.
type Pet struct {
	Name        string `json:"name"`
	Damage      int    `json:"damage"`
	EvolveLevel int    `json:"evolveLevel"`
	NextForm    string `json:"nextForm"`
	Owner       string `json:"owner"`
}

// Dungeon gates a boss encounter behind a level requirement. Boss is a
// substring matched against monster names.
type Dungeon struct {
	Name     string `json:"name"`
	LevelReq int    `json:"levelReq"`
	Boss     string `json:"boss"`
	RewardXP int    `json:"rewardXp"`
}

// GameState is the whole persisted document: every player plus the reference
// catalogs. The catalogs are loaded once and treated as immutable.
type GameState struct {
	Players  []*Player `json:"player"`
	Items    []Item    `json:"items"`
	Monsters []Monster `json:"monsters"`
	Pets     []Pet     `json:"pets"`
	Dungeons []Dungeon `json:"dungeons"`
}

// FindItem looks up a catalog item by exact name.
func (s *GameState) FindItem(name string) (Item, bool) {
	for _, it := range s.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}
