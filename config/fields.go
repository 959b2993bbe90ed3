// Package config declares every vidsel setting and loads them from
// defaults, VIDSEL_* variables and vidsel.toml.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/constant"
	"github.com/vidsel/vidsel/key"
	"github.com/vidsel/vidsel/style"
	"golang.org/x/exp/slices"
)

// Field is a declared setting.
type Field struct {
	Key         string
	Default     any
	Description string
}

var fields = make(map[string]*Field)

func define(k string, def any, description string) {
	if _, ok := fields[k]; ok {
		panic("config: " + k + " declared twice")
	}
	fields[k] = &Field{Key: k, Default: def, Description: description}
}

func init() {
	define(key.LogsWrite, false, "Write logs to a daily file in the logs directory")
	define(key.LogsLevel, "info", "Minimum level written: panic, fatal, error, warn, info, debug or trace")
	define(key.LogsJson, false, "Write log entries as JSON")

	define(key.CliColored, true, "Color the command help")
	define(key.CliVersionCheck, true, "Look for a newer release when showing help or version")

	define(key.IconsVariant, "plain", "Status icons: emoji, nerd, plain, kaomoji or squares")

	define(key.NetworkTimeout, 60, "Seconds before a player API request is abandoned, 0 to wait forever")
	define(key.NetworkTLSFingerprint, false, "Present a browser TLS fingerprint to the player API")

	define(key.ResolveParallel, 4, "Videos resolved at the same time by resolve")
	define(key.ResolveRemember, true, "Remember resolved video IDs for completion")
	define(key.ResolveShowSuggestions, true, "Offer remembered video IDs in completion and prompts")

	define(key.Player, "mpv", "Player used by play: mpv, iina or system")
}

// Fields returns every declared setting ordered by key.
func Fields() []*Field {
	all := lo.Values(fields)
	slices.SortFunc(all, func(a, b *Field) int { return strings.Compare(a.Key, b.Key) })
	return all
}

// Keys returns every declared key, sorted.
func Keys() []string {
	return lo.Map(Fields(), func(f *Field, _ int) string { return f.Key })
}

// UnknownKeyError names the declared key closest to the one asked for.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", style.Fg(style.ANSIRed)(e.Key), style.Fg(style.ANSIYellow)(e.Closest))
}

// Lookup returns the field for k or an *UnknownKeyError.
func Lookup(k string) (*Field, error) {
	if f, ok := fields[k]; ok {
		return f, nil
	}

	closest := lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return nil, &UnknownKeyError{Key: k, Closest: closest}
}

// Env is the variable overriding the field, e.g. VIDSEL_NETWORK_TIMEOUT.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Vidsel + "_" + strings.ReplaceAll(f.Key, ".", "_"))
}

// Value is the effective value after env and file overrides.
func (f *Field) Value() any {
	return viper.Get(f.Key)
}

// Type names the Go type of the default.
func (f *Field) Type() string {
	return fmt.Sprintf("%T", f.Default)
}

// Parse converts command line text to the field's type.
func (f *Field) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch f.Default.(type) {
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", f.Key, raw)
		}
		return v, nil
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects a whole number, got %q", f.Key, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"value":       f.Value(),
		"default":     f.Default,
		"description": f.Description,
		"type":        f.Type(),
		"env":         f.Env(),
	})
}

// Pretty renders the field for config info.
func (f *Field) Pretty() string {
	label := style.Fg(style.ANSIBlue)
	rows := []lo.Tuple2[string, string]{
		{A: "key", B: style.Fg(style.ANSIPurple)(f.Key)},
		{A: "value", B: highlight(f.Value())},
		{A: "default", B: highlight(f.Default)},
		{A: "type", B: f.Type()},
		{A: "env", B: f.Env()},
	}

	var b strings.Builder
	b.WriteString(style.Faint(f.Description))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s %s", label(fmt.Sprintf("%-8s", row.A)), row.B)
	}
	return b.String()
}

func highlight(v any) string {
	switch v := v.(type) {
	case bool:
		if v {
			return style.Fg(style.ANSIGreen)("true")
		}
		return style.Fg(style.ANSIRed)("false")
	case string:
		return style.Fg(style.ANSIYellow)(strconv.Quote(v))
	default:
		return fmt.Sprint(v)
	}
}
