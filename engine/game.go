package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// System advances one concern of the simulation on every fixed step
type System interface {
	Update(g *Game)
	Priority() int // Lower values run first
}

// Options configures a new Game
// Zero values select the defaults in constant
type Options struct {
	Width, Height float64
	Seed          int64 // 0 selects a time-based seed

	// Task rates in Hz
	StepRate     int
	CooldownRate int
	CosmeticRate int
}

// rateInterval converts a rate to a task interval, falling back to def for non-positive rates
func rateInterval(rate int, def time.Duration) time.Duration {
	if rate <= 0 {
		return def
	}
	return time.Second / time.Duration(rate)
}

// Game is the simulation context: it exclusively owns the world and ledger
// and drives them from a single cooperative scheduler
// Commands enter through Submit from any goroutine; signals leave through FlushSignals
type Game struct {
	World     *World
	Ledger    *ledger.Ledger
	Scheduler *Scheduler

	commands *event.EventQueue
	signals  *event.EventQueue
	router   *event.Router[*Game]
	systems  []System

	// Counters for metrics and tests
	Steps         uint64
	CooldownTicks uint64
	CosmeticTicks uint64
}

// NewGame creates a game with a fresh coin batch and all periodic tasks registered
func NewGame(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = constant.DefaultCanvasWidth
	}
	if opts.Height <= 0 {
		opts.Height = constant.DefaultCanvasHeight
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	commands := event.NewEventQueue()
	g := &Game{
		World:     NewWorld(opts.Width, opts.Height, rand.New(rand.NewSource(seed))),
		Ledger:    ledger.New(),
		Scheduler: NewScheduler(),
		commands:  commands,
		signals:   event.NewEventQueue(),
		router:    event.NewRouter[*Game](commands),
	}

	g.World.RegenerateCoins(g.Ledger.CoinTarget())

	movement := NewMovementSystem()
	magnet := NewMagnetSystem()
	bomb := NewBombSystem()
	collision := NewCollisionSystem()
	g.AddSystem(movement)
	g.AddSystem(magnet)
	g.AddSystem(bomb)
	g.AddSystem(collision)

	g.router.Register(movement)
	g.router.Register(bomb)
	g.router.Register(NewShopSystem())
	g.router.Register(NewCustomizationSystem())

	g.Scheduler.Every("step", rateInterval(opts.StepRate, constant.StepInterval), g.step)
	g.Scheduler.Every("cooldown", rateInterval(opts.CooldownRate, constant.CooldownTickInterval), g.cooldownTick)
	g.Scheduler.Every("cosmetic", rateInterval(opts.CosmeticRate, constant.CosmeticTickInterval), g.cosmeticTick)

	log.Printf("game: canvas %.0fx%.0f seed %d", opts.Width, opts.Height, seed)
	return g
}

// AddSystem adds a system and keeps the list sorted by priority
func (g *Game) AddSystem(system System) {
	g.systems = append(g.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(g.systems)-1; i++ {
		for j := 0; j < len(g.systems)-i-1; j++ {
			if g.systems[j].Priority() > g.systems[j+1].Priority() {
				g.systems[j], g.systems[j+1] = g.systems[j+1], g.systems[j]
			}
		}
	}
}

// Submit enqueues a command for the next simulation step
// Safe for concurrent producers
func (g *Game) Submit(ev event.GameEvent) {
	if !ev.Type.IsCommand() {
		return
	}
	g.commands.Push(ev)
}

// Advance runs all steps and ticks that fall within dt of virtual time
// Callers sharing the game across goroutines wrap this in World.RunSafe
func (g *Game) Advance(dt time.Duration) int {
	return g.Scheduler.Advance(dt)
}

// step is one fixed-rate update: drain commands, then run systems in priority order
func (g *Game) step() {
	g.router.DispatchAll(g)
	for _, s := range g.systems {
		s.Update(g)
	}
	g.Steps++
}

// emitSound queues a one-shot sound signal
func (g *Game) emitSound(kind event.SoundKind) {
	event.EmitSound(g.signals, kind)
}
