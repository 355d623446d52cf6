package cmd

import (
	"math"

	"github.com/bwmarrin/discordgo"
)

// Integers outside ±(2^53-1) cannot round-trip through a JSON number, so
// option values and generator bounds are confined to this range.
const (
	MaxSafeInteger int64 = 1<<53 - 1
	MinSafeInteger int64 = -MaxSafeInteger
)

// Options is the name-keyed view of an invocation's parameter list.
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// DecodeOptions converts the raw parameter list into a lookup keyed by name.
// A nil list means the payload carried no parameters at all and is rejected;
// an empty list decodes to an empty lookup. On duplicate names the last entry
// wins.
func DecodeOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) (Options, error) {
	if opts == nil {
		return nil, Argumentf("no options were supplied")
	}
	out := make(Options, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		out[o.Name] = o
	}
	return out, nil
}

// Has reports whether the option was supplied.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Int returns the integer option name, or def when it was not supplied.
func (o Options) Int(name string, def int64) (int64, error) {
	opt, ok := o[name]
	if !ok {
		return def, nil
	}
	if opt.Type != discordgo.ApplicationCommandOptionInteger && opt.Type != discordgo.ApplicationCommandOptionNumber {
		return 0, Argumentf("%s must be an integer", name)
	}
	f, ok := opt.Value.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, Argumentf("%s must be an integer", name)
	}
	if f > float64(MaxSafeInteger) || f < float64(MinSafeInteger) {
		return 0, Argumentf("%s must be between %d and %d", name, MinSafeInteger, MaxSafeInteger)
	}
	return int64(f), nil
}

// Bool returns the boolean option name, or def when it was not supplied.
func (o Options) Bool(name string, def bool) (bool, error) {
	opt, ok := o[name]
	if !ok {
		return def, nil
	}
	b, ok := opt.Value.(bool)
	if opt.Type != discordgo.ApplicationCommandOptionBoolean || !ok {
		return false, Argumentf("%s must be true or false", name)
	}
	return b, nil
}

// String returns the string option name, or def when it was not supplied.
func (o Options) String(name string, def string) (string, error) {
	opt, ok := o[name]
	if !ok {
		return def, nil
	}
	s, ok := opt.Value.(string)
	if opt.Type != discordgo.ApplicationCommandOptionString || !ok {
		return "", Argumentf("%s must be text", name)
	}
	return s, nil
}
