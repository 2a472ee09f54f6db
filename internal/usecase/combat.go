package usecase

import (
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

// Encounter is the live state of one combat session against a monster. It is
// synthesized per fight and never written back to the catalog, so dungeon
// boss scaling cannot leak into the reference data.
type Encounter struct {
	Name   string
	HP     int
	MaxHP  int
	Damage float64 // upper bound for the monster's uniform hit roll
	XP     int
}

// NewEncounter starts a fight against a catalog monster.
func NewEncounter(m domain.Monster) *Encounter {
	return &Encounter{Name: m.Name, HP: m.HP, MaxHP: m.HP, Damage: m.Damage, XP: m.XP}
}

// DeriveBoss synthesizes a dungeon boss from the monster whose name contains
// the dungeon's boss string, falling back to the last catalog monster. The
// boss gets doubled HP, 1.5x damage and the dungeon's reward XP.
func DeriveBoss(d domain.Dungeon, monsters []domain.Monster) *Encounter {
	base := monsters[len(monsters)-1]
	for _, m := range monsters {
		if strings.Contains(m.Name, d.Boss) {
			base = m
			break
		}
	}

	hp := base.HP * domain.BossHPMultiplier
	return &Encounter{
		Name:   "🏰 BOSS: " + base.Name,
		HP:     hp,
		MaxHP:  hp,
		Damage: base.Damage * domain.BossDamageMultiplier,
		XP:     d.RewardXP,
	}
}

// EnterDungeon gates a raid on the dungeon's level requirement. An
// under-leveled player is rejected before any boss is derived; nothing is
// mutated on rejection.
func EnterDungeon(p *domain.Player, d domain.Dungeon, monsters []domain.Monster) (*Encounter, error) {
	if p.Level < d.LevelReq {
		return nil, ErrLevelTooLow
	}
	return DeriveBoss(d, monsters), nil
}

// OutcomeKind tags the result of one encounter step.
type OutcomeKind int

const (
	OutcomeOngoing OutcomeKind = iota
	OutcomeMonsterDefeated
	OutcomePlayerDefeated
)

// EncounterOutcome reports what one step did to both sides.
type EncounterOutcome struct {
	Kind        OutcomeKind
	DamageDealt int
	Critical    bool
	DamageTaken int
	XPGained    int
	CoinsGained int
	LeveledUp   bool
	NewLevel    int
	MonsterHP   int
	PlayerHP    int
}

// ResolveHit computes the player's damage for one attack. A critical hit is
// drawn against the player's crit percentage and doubles the damage; there is
// no defense subtraction in this direction.
func ResolveHit(rng *rand.Rand, damage, critPct int) (int, bool) {
	if rng.Float64()*100 < float64(critPct) {
		return damage * 2, true
	}
	return damage, false
}

// ResolveRetaliation draws the monster's hit: a uniform integer in
// [1, damageCap]. Monsters roll variance where players roll crits.
func ResolveRetaliation(rng *rand.Rand, damageCap float64) int {
	return int(rng.Float64()*damageCap) + 1
}

// ResolveEncounterStep runs one round: the player attacks, and if the monster
// survives it retaliates. The player record is mutated in place; rewards,
// level-up and defeat recovery all land within this call.
//
// The level-up check runs exactly once per step. A reward large enough to
// cross two thresholds leaves the excess XP above the threshold until the
// next reward, matching the shipped behavior.
func ResolveEncounterStep(rng *rand.Rand, p *domain.Player, e *Encounter) EncounterOutcome {
	dealt, crit := ResolveHit(rng, p.Damage, p.Crit)
	e.HP -= dealt
	if e.HP < 0 {
		e.HP = 0
	}

	out := EncounterOutcome{DamageDealt: dealt, Critical: crit}

	if e.HP <= 0 {
		out.Kind = OutcomeMonsterDefeated
		out.XPGained = e.XP
		out.CoinsGained = domain.KillCoinReward

		// Victory restores HP to the max as it was before any level-up
		// bonus lands.
		restoredHP := p.MaxHP

		p.XP += e.XP
		p.Coins += domain.KillCoinReward
		if p.XP >= p.XPThreshold() {
			p.XP -= p.XPThreshold()
			p.Level++
			p.MaxHP += domain.LevelUpMaxHPBonus
			p.Damage += domain.LevelUpDamageBonus
			out.LeveledUp = true
			out.NewLevel = p.Level
		}
		p.HP = restoredHP
		p.ClampHP()
		p.Touch()

		out.PlayerHP = p.HP
		logCombatStep(p, e, out)
		return out
	}

	taken := ResolveRetaliation(rng, e.Damage)
	p.HP -= taken
	out.DamageTaken = taken

	if p.HP <= 0 {
		// Defeat recovery is applied here, in the same mutation, so a
		// beaten player never sits at 0 HP between updates.
		out.Kind = OutcomePlayerDefeated
		p.HP = p.MaxHP * domain.DefeatRecoveryPercent / 100
		p.ClampHP()
	} else {
		out.Kind = OutcomeOngoing
		p.ClampHP()
	}
	p.Touch()

	out.MonsterHP = e.HP
	out.PlayerHP = p.HP
	logCombatStep(p, e, out)
	return out
}

func logCombatStep(p *domain.Player, e *Encounter, out EncounterOutcome) {
	logger.Log.WithFields(logrus.Fields{
		"component":    "combat",
		"player_id":    p.UserID,
		"monster":      e.Name,
		"damage_dealt": out.DamageDealt,
		"critical":     out.Critical,
		"damage_taken": out.DamageTaken,
		"monster_hp":   out.MonsterHP,
		"player_hp":    out.PlayerHP,
		"outcome":      out.Kind,
	}).Debug("Encounter step resolved.")
}
