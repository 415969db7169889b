// Package engine orchestrates turns: it parses input, runs the room's
// begin-command phase, executes the command against the world, runs the
// end-turn phase, processes scheduled events and checks for a terminal
// state. Everything happens synchronously on one call stack.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/fiction-engine/pkg/events"
	"github.com/jwebster45206/fiction-engine/pkg/parser"
	"github.com/jwebster45206/fiction-engine/pkg/scope"
	"github.com/jwebster45206/fiction-engine/pkg/state"
	"github.com/jwebster45206/fiction-engine/pkg/storage"
	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// Version appears in the version command's banner.
const Version = "1.2.0"

// Verbosity controls how room descriptions repeat.
type Verbosity int

const (
	// VerbosityBrief prints full descriptions only on first visit.
	VerbosityBrief Verbosity = iota
	// VerbosityVerbose always prints full descriptions.
	VerbosityVerbose
	// VerbositySuperbrief prints only room names.
	VerbositySuperbrief
)

// Status is the best-effort status line notification.
type Status struct {
	Location string
	Score    int
	Moves    int
}

// WorldBuilder constructs a fresh world and its starting player, and may
// schedule initial events. The engine calls it once at creation and again
// on restart.
type WorldBuilder func(sched *events.Scheduler) (*world.World, error)

// Engine drives one game.
type Engine struct {
	w        *world.World
	parser   *parser.Parser
	resolver *scope.Resolver
	sched    *events.Scheduler
	builder  WorldBuilder

	out    world.Sink
	logger *slog.Logger

	store     storage.Storage
	sessionID uuid.UUID
	statusFn  func(Status)

	verbosity Verbosity
	moves     int
	lastCmd   *world.Command
	quit      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSink directs narrative output to the given sink.
func WithSink(s world.Sink) Option {
	return func(e *Engine) { e.out = s }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithStorage enables the save and restore commands.
func WithStorage(st storage.Storage, sessionID uuid.UUID) Option {
	return func(e *Engine) {
		e.store = st
		e.sessionID = sessionID
	}
}

// WithStatusFunc registers a best-effort status line callback, invoked
// after every turn.
func WithStatusFunc(fn func(Status)) Option {
	return func(e *Engine) { e.statusFn = fn }
}

// New builds an engine around a world constructor.
func New(builder WorldBuilder, opts ...Option) (*Engine, error) {
	if builder == nil {
		return nil, errors.New("world builder is required")
	}
	e := &Engine{
		builder: builder,
		out:     &world.Transcript{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.buildWorld(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) buildWorld() error {
	e.sched = events.NewScheduler(e.logger)
	w, err := e.builder(e.sched)
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}
	if w.Player() == nil {
		return errors.New("world has no player")
	}
	if w.Player().CurrentRoom() == nil {
		return errors.New("player has no starting room")
	}
	e.w = w
	e.parser = parser.New(w)
	e.resolver = scope.NewResolver(w)
	e.moves = 0
	e.lastCmd = nil
	return nil
}

// World returns the live world.
func (e *Engine) World() *world.World {
	return e.w
}

// Scheduler returns the event scheduler, for content that queues events
// after construction.
func (e *Engine) Scheduler() *events.Scheduler {
	return e.sched
}

// Moves returns the number of turns taken.
func (e *Engine) Moves() int {
	return e.moves
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.w.Finished()
}

// Outcome returns the terminal state, or playing.
func (e *Engine) Outcome() world.Outcome {
	return e.w.Outcome()
}

// EndMessage returns the winning or losing text.
func (e *Engine) EndMessage() string {
	return e.w.EndMessage()
}

// QuitRequested reports whether the player asked to quit.
func (e *Engine) QuitRequested() bool {
	return e.quit
}

// Parse converts a line of input into a command without executing it.
func (e *Engine) Parse(line string) *world.Command {
	return e.parser.Parse(line, e.w.Player())
}

// RunLine runs one full turn from a raw input line.
func (e *Engine) RunLine(line string) error {
	return e.ExecuteCommand(e.Parse(line))
}

// Look prints the current room's full description, as front ends do when a
// game starts.
func (e *Engine) Look() {
	actor := e.w.Player()
	ctx := e.actionContext(nil)
	e.describeRoom(ctx, actor.CurrentRoom(), true)
	e.notifyStatus()
}

// ExecuteCommand runs one full turn for a parsed command. It returns an
// error only on structural misuse (nil command) or an internal invariant
// violation; everything the player can cause comes back as output text.
func (e *Engine) ExecuteCommand(cmd *world.Command) error {
	if cmd == nil {
		return errors.New("nil command")
	}
	actor := e.w.Player()
	room := actor.CurrentRoom()

	if e.w.Finished() {
		switch cmd.Action {
		case world.ActionRestart, world.ActionQuit, world.ActionVersion:
			// still allowed
		default:
			e.print("The game is over. Type RESTART or QUIT.")
			return nil
		}
	}

	// Meta commands skip the turn machinery entirely: no phases, no
	// events, no move counter. They also work in the dark.
	if cmd.Meta() {
		err := e.executeMeta(cmd)
		e.notifyStatus()
		return err
	}

	if cmd.Action == world.ActionAgain {
		if e.lastCmd == nil {
			e.print("You haven't done anything to repeat yet.")
			return nil
		}
		cmd = e.lastCmd
	}

	ctx := e.actionContext(cmd)

	room.ExecutePhase(world.PhaseBeginTurn, ctx)

	vetoed := room.ExecutePhase(world.PhaseBeginCommand, ctx)
	if !vetoed {
		ok, err := e.execute(ctx, cmd)
		if err != nil {
			return err
		}
		// Only a command that took effect rebinds "it"; a refusal leaves
		// the previous referent in place.
		if ok && cmd.Object != nil {
			actor.SetLastMentioned(cmd.Object)
		}
	}
	ctx.Command = nil

	if !e.w.Finished() {
		// The player may have moved; end-turn runs where they stand now.
		if cur := actor.CurrentRoom(); cur != nil {
			cur.ExecutePhase(world.PhaseEndTurn, ctx)
			ctx.Room = cur
		}
	}

	e.sched.Process(ctx)

	e.moves++
	if cmd.Action != world.ActionUnknown && cmd.Action != world.ActionIncomplete {
		e.lastCmd = cmd
	}

	if e.w.Finished() {
		e.printGameOver()
	}
	e.notifyStatus()
	return nil
}

func (e *Engine) actionContext(cmd *world.Command) *world.ActionContext {
	return &world.ActionContext{
		World:   e.w,
		Room:    e.w.Player().CurrentRoom(),
		Actor:   e.w.Player(),
		Command: cmd,
		Out:     e.out,
	}
}

func (e *Engine) print(line string) {
	if e.out != nil {
		e.out.Print(line)
	}
}

func (e *Engine) printGameOver() {
	e.print("")
	if msg := e.w.EndMessage(); msg != "" {
		e.print(msg)
	}
	switch e.w.Outcome() {
	case world.OutcomeWon:
		e.print("    *** The game is over. You have won. ***")
	case world.OutcomeLost:
		e.print("    *** The game is over. ***")
	}
}

func (e *Engine) notifyStatus() {
	if e.statusFn == nil {
		return
	}
	loc := ""
	if room := e.w.Player().CurrentRoom(); room != nil {
		loc = room.Name
	}
	e.statusFn(Status{Location: loc, Score: e.w.Score(), Moves: e.moves})
}

// executeMeta handles the commands that live outside the world model.
func (e *Engine) executeMeta(cmd *world.Command) error {
	switch cmd.Action {
	case world.ActionSave:
		e.doSave()
	case world.ActionRestore:
		e.doRestore()
	case world.ActionRestart:
		if err := e.buildWorld(); err != nil {
			return err
		}
		e.quit = false
		e.print("Restarting...")
		e.print("")
		e.Look()
	case world.ActionQuit:
		e.quit = true
		e.print("Thanks for playing.")
	case world.ActionBrief:
		e.verbosity = VerbosityBrief
		e.print("Brief descriptions: full descriptions only in rooms you haven't seen.")
	case world.ActionVerbose:
		e.verbosity = VerbosityVerbose
		e.print("Verbose descriptions: full descriptions every time.")
	case world.ActionSuperbrief:
		e.verbosity = VerbositySuperbrief
		e.print("Superbrief descriptions: room names only.")
	case world.ActionVersion:
		e.print(fmt.Sprintf("%s (fiction-engine v%s)", e.w.Name, Version))
	default:
		return fmt.Errorf("unhandled meta command %q", cmd.Action)
	}
	return nil
}

func (e *Engine) doSave() {
	if e.store == nil {
		e.print("Saving is not available.")
		return
	}
	gs := e.w.Capture()
	gs.ID = e.sessionID
	gs.Moves = e.moves
	gs.UpdatedAt = time.Now()
	for _, ev := range e.sched.Events() {
		gs.Events = append(gs.Events, state.EventState{
			Name:     ev.Name,
			Turns:    ev.Turns,
			Priority: ev.Priority,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.store.SaveGameState(ctx, e.sessionID, gs); err != nil {
		e.logger.Error("save failed", "session", e.sessionID, "error", err)
		e.print("The save failed.")
		return
	}
	e.print("Saved.")
}

func (e *Engine) doRestore() {
	if e.store == nil {
		e.print("Restoring is not available.")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	gs, err := e.store.LoadGameState(ctx, e.sessionID)
	if err != nil {
		e.logger.Error("restore failed", "session", e.sessionID, "error", err)
		e.print("The restore failed.")
		return
	}
	if gs == nil {
		e.print("No saved game found.")
		return
	}
	if err := e.w.Apply(gs); err != nil {
		e.logger.Error("restore failed", "session", e.sessionID, "error", err)
		e.print("The restore failed.")
		return
	}
	e.moves = gs.Moves

	// Event actions are closures owned by the live world; re-time the ones
	// the snapshot knows, drop the rest.
	saved := make(map[string]state.EventState, len(gs.Events))
	for _, ev := range gs.Events {
		saved[ev.Name] = ev
	}
	for _, ev := range e.sched.Events() {
		if snap, ok := saved[ev.Name]; ok {
			e.sched.SetTurns(ev.Name, snap.Turns)
			delete(saved, ev.Name)
		} else {
			e.sched.Dequeue(ev.Name)
		}
	}
	for name := range saved {
		e.logger.Warn("saved event no longer defined by world", "name", name)
	}

	e.print("Restored.")
	e.print("")
	e.Look()
}
