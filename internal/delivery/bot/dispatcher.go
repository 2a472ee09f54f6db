package bot

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/telegram"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/usecase"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

// Transport is the outbound chat surface the dispatcher drives. Satisfied by
// *telegram.Client; faked in tests.
type Transport interface {
	GetUpdates(offset int, timeout time.Duration) ([]telegram.Update, error)
	SendMessage(chatID int64, text string, keyboard *telegram.ReplyKeyboard) error
	SendPhoto(chatID int64, photo []byte, caption string) error
}

// Generator is the image-synthesis capability used by the forge command.
type Generator interface {
	GenerateImage(prompt, aspectRatio, imageSize string) ([]byte, error)
}

// mainKeyboard is sent with every reply so players can tap commands.
var mainKeyboard = &telegram.ReplyKeyboard{
	Keyboard: [][]telegram.KeyboardButton{
		{{Text: "👤 Profile"}, {Text: "⚔️ Hunt"}},
		{{Text: "🎒 Bag"}, {Text: "❤️ Heal"}},
		{{Text: "🎁 Daily"}, {Text: "🎨 Forge"}},
	},
	ResizeKeyboard: true,
}

// Dispatcher is one bot session: it owns the update offset and the running
// flag, polls for messages and routes each one to a player mutation and a
// reply. One fetch is in flight at a time and a batch is processed in order,
// so replies follow inbound order.
type Dispatcher struct {
	transport Transport
	generator Generator
	directory *usecase.Directory

	rng          *rand.Rand
	pollInterval time.Duration
	pollTimeout  time.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	offset  int

	log *logrus.Entry
}

// NewDispatcher wires a bot session. The rng is injected so combat tests stay
// deterministic.
func NewDispatcher(transport Transport, generator Generator, directory *usecase.Directory, rng *rand.Rand, pollInterval, pollTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		transport:    transport,
		generator:    generator,
		directory:    directory,
		rng:          rng,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		log:          logger.Log.WithField("component", "dispatcher"),
	}
}

// Start transitions Stopped -> Polling and launches the loop. Returns false
// if the session is already polling.
func (d *Dispatcher) Start() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return false
	}
	d.running = true
	d.stop = make(chan struct{})

	go d.run(d.stop)
	d.log.Info("Bot session started.")
	return true
}

// Stop requests the loop to halt. An in-flight fetch completes; the flag is
// observed at the top of the next iteration. No automatic restart happens on
// any error.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}
	d.running = false
	close(d.stop)
	d.log.Info("Bot session stopping.")
}

// Running reports whether the session is polling.
func (d *Dispatcher) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Offset exposes the next unseen update id, for tests and status output.
func (d *Dispatcher) Offset() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.offset
}

func (d *Dispatcher) run(stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		updates, err := d.transport.GetUpdates(d.Offset(), d.pollTimeout)
		if err != nil {
			// Transient transport failures are swallowed; the next
			// iteration is the retry policy.
			d.log.WithError(err).Warn("Fetch failed, continuing.")
		}

		for _, u := range updates {
			// Advance the offset before processing: within this run
			// an update is delivered at most once, and a crash
			// mid-processing does not replay it (at-least-once
			// overall, not exactly-once).
			d.mu.Lock()
			if u.UpdateID+1 > d.offset {
				d.offset = u.UpdateID + 1
			}
			d.mu.Unlock()

			d.handleUpdate(u)
		}

		select {
		case <-stop:
			return
		case <-time.After(d.pollInterval):
		}
	}
}

// handleUpdate resolves one inbound update to a command, materializes the
// player and applies the mutation. All failures are contained here.
func (d *Dispatcher) handleUpdate(u telegram.Update) {
	if u.Message == nil || u.Message.Text == "" {
		return
	}

	chatID := u.Message.Chat.ID
	userID := strconv.FormatInt(u.Message.From.ID, 10)
	username := u.Message.From.Username
	if username == "" {
		username = u.Message.From.FirstName
	}

	d.log.WithFields(logrus.Fields{
		"chat_id":   chatID,
		"player_id": userID,
	}).Infof("Pesan: %s dari %s", u.Message.Text, username)

	player, created := d.directory.GetOrCreate(userID, username)
	if created {
		d.reply(chatID, fmt.Sprintf("Selamat datang %s! Akun Anda telah dibuat.", username))
	}

	cmd := usecase.Classify(u.Message.Text)

	switch cmd.Intent {
	case usecase.IntentShowProfile:
		d.reply(chatID, profileText(player))
	case usecase.IntentHunt:
		d.reply(chatID, d.hunt(player))
	case usecase.IntentShowBag:
		d.reply(chatID, bagText(player))
	case usecase.IntentHeal:
		d.reply(chatID, healText(player))
	case usecase.IntentClaimDaily:
		d.reply(chatID, dailyText(player))
	case usecase.IntentForge:
		d.forge(chatID, cmd.Prompt)
		d.reply(chatID, "🛠️ Menempa gambar... mohon tunggu.")
	default:
		// Unrecognized commands are a deliberate no-op: no reply.
		if !created {
			return
		}
	}

	if err := d.directory.Save(); err != nil {
		d.log.WithError(err).Error("State save failed.")
	}
}

// hunt runs a full encounter against a random catalog monster, one resolution
// step at a time, and renders the battle as reply text.
func (d *Dispatcher) hunt(p *domain.Player) string {
	monsters := d.directory.State().Monsters
	if len(monsters) == 0 {
		return "🌫️ The wilderness is empty."
	}
	enc := usecase.NewEncounter(monsters[d.rng.Intn(len(monsters))])

	var b strings.Builder
	fmt.Fprintf(&b, "⚔️ You challenged %s!\n", enc.Name)

	for {
		out := usecase.ResolveEncounterStep(d.rng, p, enc)

		switch out.Kind {
		case usecase.OutcomeMonsterDefeated:
			fmt.Fprintf(&b, "🌟 You defeated %s!\n", enc.Name)
			fmt.Fprintf(&b, "Gained %d XP and %d Coins!", out.XPGained, out.CoinsGained)
			if out.LeveledUp {
				fmt.Fprintf(&b, "\n🎉 CONGRATULATIONS! You leveled up to %d!", out.NewLevel)
			}
			return b.String()
		case usecase.OutcomePlayerDefeated:
			fmt.Fprintf(&b, "💀 You were defeated by %s...\n", enc.Name)
			fmt.Fprintf(&b, "You limp home with %d/%d HP.", p.HP, p.MaxHP)
			return b.String()
		}
	}
}

// forge fires the asynchronous image job. The textual acknowledgment is sent
// by the caller immediately; the media message is owned entirely by this
// goroutine and may land after later commands have already been answered.
func (d *Dispatcher) forge(chatID int64, prompt string) {
	jobID := uuid.New().String()
	jobLog := d.log.WithFields(logrus.Fields{
		"forge_job": jobID,
		"chat_id":   chatID,
	})

	go func() {
		img, err := d.generator.GenerateImage(prompt, "1:1", "1K")
		if err != nil {
			jobLog.WithError(err).Warn("Image generation failed.")
			if err := d.transport.SendMessage(chatID, "🎨 Forging failed. Check your API key.", mainKeyboard); err != nil {
				jobLog.WithError(err).Warn("Failure reply not delivered.")
			}
			return
		}

		if err := d.transport.SendPhoto(chatID, img, "🎨 *AI Forge:* "+prompt); err != nil {
			jobLog.WithError(err).Warn("Photo not delivered.")
			return
		}
		jobLog.Info("Forge job delivered.")
	}()
}

func (d *Dispatcher) reply(chatID int64, text string) {
	if err := d.transport.SendMessage(chatID, text, mainKeyboard); err != nil {
		// Sends are fire-and-forget; failures are not retried inline.
		d.log.WithError(err).Warn("Reply not delivered.")
	}
}

// ==== Reply rendering ====

func profileText(p *domain.Player) string {
	return fmt.Sprintf("👤 *HERO: %s*\nLevel: %d\nCoins: %d💰\nHP: %d/%d",
		p.Username, p.Level, p.Coins, p.HP, p.MaxHP)
}

func bagText(p *domain.Player) string {
	if len(p.Inventory) == 0 {
		return "🎒 Bag Empty. Visit the merchant to stock up!"
	}

	var b strings.Builder
	b.WriteString("🎒 *Your Inventory:*\n")
	for _, name := range p.Inventory {
		b.WriteString("• " + name)
		if name == p.EquippedWeapon || name == p.EquippedArmor || name == p.EquippedAccessory {
			b.WriteString(" (equipped)")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Coins: %d💰", p.Coins)
	return b.String()
}

func healText(p *domain.Player) string {
	switch err := usecase.Heal(p); err {
	case nil:
		return fmt.Sprintf("❤️ Fully healed! HP: %d/%d (-%d💰)", p.HP, p.MaxHP, domain.HealCost)
	case usecase.ErrHealthFull:
		return "Health is already full!"
	case usecase.ErrNotEnoughCoins:
		return fmt.Sprintf("Not enough coins (Need %d)!", domain.HealCost)
	default:
		return "Healing failed."
	}
}

func dailyText(p *domain.Player) string {
	reward, err := usecase.ClaimDaily(p, time.Now())
	if err == usecase.ErrDailyClaimed {
		return "Daily reward already claimed today! Come back tomorrow warrior."
	}
	return fmt.Sprintf("🎁 Reward Claimed! +%d💰 (Total: %d💰)", reward, p.Coins)
}
