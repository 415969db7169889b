// Package parser converts raw input lines into structured commands, binding
// noun phrases to concrete entities through the scope resolver. The parser
// never fails: problems surface as unknown or incomplete commands, or as
// commands carrying a nil object, and execution owns the user-facing
// message. Identical input against identical world scope always resolves
// identically.
package parser

import (
	"strings"

	"github.com/jwebster45206/fiction-engine/pkg/scope"
	"github.com/jwebster45206/fiction-engine/pkg/world"
)

// Parser turns lines of text into commands for one world.
type Parser struct {
	scope *scope.Resolver
}

// New creates a parser backed by the world's scope resolver.
func New(w *world.World) *Parser {
	return &Parser{scope: scope.NewResolver(w)}
}

// Parse converts one line of input into a command for the given actor.
func (p *Parser) Parse(line string, actor *world.Player) *world.Command {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return &world.Command{Action: world.ActionUnknown, Message: "No command given"}
	}

	var cands []*world.Entity
	if actor != nil {
		cands = p.scope.Candidates(actor.CurrentRoom(), actor)
	}

	// Directions win over verbs: "north" and "n" are moves.
	if d, ok := world.ParseDirection(tokens[0]); ok && len(tokens) == 1 {
		return &world.Command{Action: world.ActionMove, Direction: d}
	}

	// Longest verb phrase first, so "take off hat" is an unwear and never a
	// take of "off hat". The particle may also trail the noun ("take hat
	// off", "turn lamp on").
	if len(tokens) >= 2 {
		if act, ok := phrasalVerbs[tokens[0]+" "+tokens[1]]; ok {
			return p.objectCommand(act, tokens[2:], cands, actor)
		}
		last := tokens[len(tokens)-1]
		if particles[last] && len(tokens) >= 3 {
			if act, ok := phrasalVerbs[tokens[0]+" "+last]; ok {
				return p.objectCommand(act, tokens[1:len(tokens)-1], cands, actor)
			}
		}
	}

	verb := tokens[0]
	rest := tokens[1:]

	if putVerbs[verb] {
		return p.parsePut(rest, cands, actor)
	}

	act, known := verbSynonyms[verb]
	if !known {
		return p.parseCustom(verb, rest, cands, actor)
	}

	switch act {
	case world.ActionMove:
		if len(rest) == 0 {
			return &world.Command{Action: world.ActionMove}
		}
		if d, ok := world.ParseDirection(rest[0]); ok {
			return &world.Command{Action: world.ActionMove, Direction: d}
		}
		return &world.Command{Action: world.ActionMove, ObjectName: strings.Join(rest, " ")}

	case world.ActionLook:
		if len(rest) == 0 {
			return &world.Command{Action: world.ActionLook}
		}
		// "look lamp" reads as an examine.
		return p.objectCommand(world.ActionExamine, rest, cands, actor)

	case world.ActionInventory, world.ActionWait, world.ActionAgain,
		world.ActionSave, world.ActionRestore, world.ActionRestart,
		world.ActionQuit, world.ActionBrief, world.ActionVerbose,
		world.ActionSuperbrief, world.ActionVersion:
		return &world.Command{Action: act}

	default:
		return p.objectCommand(act, rest, cands, actor)
	}
}

// objectCommand builds a single-object command, splitting off an instrument
// phrase ("open door with key") for the verbs that take one.
func (p *Parser) objectCommand(act world.Action, words []string, cands []*world.Entity, actor *world.Player) *world.Command {
	cmd := &world.Command{Action: act}

	objWords := words
	var instWords []string
	switch act {
	case world.ActionExamine, world.ActionOpen, world.ActionClose, world.ActionRead:
		objWords, instWords = splitInstrument(words)
	}

	if len(objWords) > 0 {
		cmd.ObjectName = strings.Join(objWords, " ")
		cmd.Object = p.resolve(objWords, cands, actor)
	}
	if len(instWords) > 0 {
		cmd.SecondName = strings.Join(instWords, " ")
		cmd.Second = p.resolve(instWords, cands, actor)
	}
	return cmd
}

// parsePut handles the two-object forms "put X in Y" and "put X on Y". A
// missing half is an incomplete command, distinct from unknown.
func (p *Parser) parsePut(rest []string, cands []*world.Entity, actor *world.Player) *world.Command {
	if len(rest) == 0 {
		return &world.Command{
			Action:  world.ActionIncomplete,
			Message: "What do you want to put, and where?",
		}
	}

	for i, tok := range rest {
		var act world.Action
		switch {
		case containerPreps[tok]:
			act = world.ActionPutIn
		case surfacePreps[tok]:
			act = world.ActionPutOn
		default:
			continue
		}

		objWords := rest[:i]
		secondWords := rest[i+1:]
		if len(objWords) == 0 || len(secondWords) == 0 {
			return &world.Command{
				Action:     world.ActionIncomplete,
				ObjectName: strings.Join(objWords, " "),
				Message:    "What do you want to put, and where?",
			}
		}

		cmd := &world.Command{
			Action:     act,
			ObjectName: strings.Join(objWords, " "),
			Object:     p.resolve(objWords, cands, actor),
			SecondName: strings.Join(secondWords, " "),
			Second:     p.resolve(secondWords, cands, actor),
		}
		return cmd
	}

	// "put cloak" with no destination.
	return &world.Command{
		Action:     world.ActionIncomplete,
		ObjectName: strings.Join(rest, " "),
		Object:     p.resolve(rest, cands, actor),
		Message:    "Where do you want to put that?",
	}
}

// parseCustom keeps unrecognized input around as custom(verb, objects,
// modifiers) when the leading token could plausibly be a verb.
func (p *Parser) parseCustom(verb string, rest []string, cands []*world.Entity, actor *world.Player) *world.Command {
	if !wordLike(verb) {
		return &world.Command{Action: world.ActionUnknown, Message: "I don't understand that."}
	}

	cmd := &world.Command{Action: world.ActionCustom, Verb: verb}
	for _, tok := range rest {
		if e := p.resolve([]string{tok}, cands, actor); e != nil {
			cmd.Objects = append(cmd.Objects, e)
		} else {
			cmd.Modifiers = append(cmd.Modifiers, tok)
		}
	}
	return cmd
}

// resolve binds a noun phrase to an entity in scope: the pronoun "it", a
// full-name match, then a match on the phrase's words against the
// candidate's name words. Returns nil when nothing in scope matches.
func (p *Parser) resolve(words []string, cands []*world.Entity, actor *world.Player) *world.Entity {
	phrase := strings.Join(words, " ")
	if phrase == "it" && actor != nil {
		return actor.LastMentioned()
	}

	for _, c := range cands {
		if strings.EqualFold(c.Name, phrase) {
			return c
		}
	}
	for _, c := range cands {
		if matchesNameWords(c.Name, words) {
			return c
		}
	}
	return nil
}

// matchesNameWords reports whether every phrase word appears among the
// significant words of the candidate's name.
func matchesNameWords(name string, words []string) bool {
	nameWords := strings.Fields(strings.ToLower(name))
	for _, w := range words {
		found := false
		for _, nw := range nameWords {
			if nw == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// tokenize lowercases, splits on whitespace, trims punctuation and drops
// articles.
func tokenize(line string) []string {
	raw := strings.Fields(strings.ToLower(line))
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, ".,!?;:\"'")
		if tok == "" || articles[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// splitInstrument separates "door with key" into the object and instrument
// phrases.
func splitInstrument(words []string) (obj, inst []string) {
	for i, tok := range words {
		if instrumentPreps[tok] {
			return words[:i], words[i+1:]
		}
	}
	return words, nil
}

// wordLike reports whether a token is plausible as a verb: letters only.
func wordLike(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return true
}
