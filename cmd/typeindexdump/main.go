// typeindexdump is a small CLI that exercises the type index against a
// synthetic "debug info" fixture, the way gopdb's pdbdump exercises
// the PDB reader against a real PDB file. It is illustrative: real
// debug-info parsing is out of scope for the index itself (spec §1).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/internal/fixture"
	"github.com/jtang613/typeindex/internal/primitive"
	"github.com/jtang613/typeindex/pkg/typeindex"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := &cli.App{
		Name:  "typeindexdump",
		Usage: "inspect a synthetic type-index fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "fixture", Required: true, Usage: "path to a JSON or .bin fixture file"},
			&cli.UintFlag{Name: "word-size", Value: 8, Usage: "target word size in bytes (4 or 8)"},
			&cli.StringFlag{Name: "config", Usage: "optional config file (word-size, log-level)"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug|info|warn|error"},
			&cli.BoolFlag{Name: "pretty", Usage: "pretty-print JSON output"},
		},
		Commands: []*cli.Command{
			{
				Name:      "primitive",
				Usage:     "resolve a primitive kind, e.g. 'long', 'size_t'",
				ArgsUsage: "<name>",
				Action:    cmdPrimitive,
			},
			{
				Name:      "find",
				Usage:     "resolve a named type",
				ArgsUsage: "<kind> <name> [filename]",
				Action:    cmdFind,
			},
			{
				Name:      "member",
				Usage:     "resolve a struct/union member",
				ArgsUsage: "<kind> <name> <member>",
				Action:    cmdMember,
			},
			{
				Name:      "pointer",
				Usage:     "intern a pointer to a named type",
				ArgsUsage: "<kind> <name>",
				Action:    cmdPointer,
			},
		},
	}
	return app.Run(args)
}

func loadConfig(c *cli.Context) error {
	if path := c.String("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "reading config file")
		}
	}
	viper.SetDefault("word-size", c.Uint("word-size"))
	viper.SetDefault("log-level", c.String("log-level"))
	return nil
}

func newLogger(c *cli.Context) zerolog.Logger {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func buildIndex(c *cli.Context) (*typeindex.Index, error) {
	if err := loadConfig(c); err != nil {
		return nil, err
	}

	path := c.String("fixture")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading fixture %q", path)
	}

	var fx *fixture.Fixture
	if strings.HasSuffix(path, ".bin") {
		fx, err = fixture.LoadBinary(data)
	} else {
		fx, err = fixture.Load(data)
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading fixture")
	}

	ix := typeindex.New(typeindex.WithLogger(newLogger(c)))
	if err := ix.SetWordSize(uint64(viper.GetInt("word-size"))); err != nil {
		return nil, errors.Wrap(err, "setting word size")
	}
	if err := ix.AddFinder(fx.Finder(), nil); err != nil {
		return nil, errors.Wrap(err, "registering fixture finder")
	}
	return ix, nil
}

func outputJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if c.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func cmdPrimitive(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return cli.Exit("primitive: missing <name>", 1)
	}
	ix, err := buildIndex(c)
	if err != nil {
		return err
	}
	kind, ok := primitiveKindByName[c.Args().First()]
	if !ok {
		return cli.Exit(fmt.Sprintf("primitive: unknown primitive %q", c.Args().First()), 1)
	}
	t, err := ix.FindPrimitive(kind)
	if err != nil {
		return err
	}
	return outputJSON(c, describeType(ctype.QualifiedType{Type: t}))
}

func cmdFind(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return cli.Exit("find: usage: find <kind> <name> [filename]", 1)
	}
	ix, err := buildIndex(c)
	if err != nil {
		return err
	}
	kind, ok := ctypeKindByName[c.Args().Get(0)]
	if !ok {
		return cli.Exit(fmt.Sprintf("find: unknown kind %q", c.Args().Get(0)), 1)
	}
	name := c.Args().Get(1)
	filename := c.Args().Get(2)
	result, err := ix.Find(kind, name, filename, filename != "")
	if err != nil {
		return err
	}
	return outputJSON(c, describeType(result))
}

func cmdMember(c *cli.Context) error {
	if c.Args().Len() < 3 {
		return cli.Exit("member: usage: member <kind> <name> <member>", 1)
	}
	ix, err := buildIndex(c)
	if err != nil {
		return err
	}
	kind, ok := ctypeKindByName[c.Args().Get(0)]
	if !ok {
		return cli.Exit(fmt.Sprintf("member: unknown kind %q", c.Args().Get(0)), 1)
	}
	result, err := ix.Find(kind, c.Args().Get(1), "", false)
	if err != nil {
		return err
	}
	value, err := ix.FindMember(result.Type, c.Args().Get(2))
	if err != nil {
		return err
	}
	return outputJSON(c, map[string]any{
		"type":           describeType(value.Type),
		"bit_offset":     value.BitOffset,
		"bit_field_size": value.BitFieldSize,
	})
}

func cmdPointer(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return cli.Exit("pointer: usage: pointer <kind> <name>", 1)
	}
	ix, err := buildIndex(c)
	if err != nil {
		return err
	}
	kind, ok := ctypeKindByName[c.Args().Get(0)]
	if !ok {
		return cli.Exit(fmt.Sprintf("pointer: unknown kind %q", c.Args().Get(0)), 1)
	}
	result, err := ix.Find(kind, c.Args().Get(1), "", false)
	if err != nil {
		return err
	}
	ptr, err := ix.PointerType(result)
	if err != nil {
		return err
	}
	return outputJSON(c, describeType(ctype.QualifiedType{Type: ptr}))
}

var primitiveKindByName = map[string]primitive.Kind{
	"char": primitive.Char, "signed char": primitive.SignedChar, "unsigned char": primitive.UnsignedChar,
	"short": primitive.Short, "unsigned short": primitive.UnsignedShort,
	"int": primitive.Int, "unsigned int": primitive.UnsignedInt,
	"long": primitive.Long, "unsigned long": primitive.UnsignedLong,
	"long long": primitive.LongLong, "unsigned long long": primitive.UnsignedLongLong,
	"bool": primitive.Bool, "float": primitive.Float, "double": primitive.Double,
	"long double": primitive.LongDouble, "size_t": primitive.SizeT, "ptrdiff_t": primitive.PtrdiffT,
	"void": primitive.Void,
}

var ctypeKindByName = map[string]ctype.Kind{
	"void": ctype.Void, "int": ctype.Int, "bool": ctype.Bool, "float": ctype.Float,
	"struct": ctype.Struct, "union": ctype.Union, "enum": ctype.Enum, "typedef": ctype.Typedef,
	"pointer": ctype.Pointer, "array": ctype.Array, "function": ctype.Function,
}

// describeType renders a QualifiedType as a small JSON-friendly map;
// it is a convenience for the CLI only, not part of the index's API.
func describeType(q ctype.QualifiedType) map[string]any {
	if !q.Found() {
		return map[string]any{"found": false}
	}
	t := q.Type
	out := map[string]any{
		"found":      true,
		"kind":       t.Kind().Spelling(),
		"name":       t.Name(),
		"qualifiers": q.Qualifiers.String(),
	}
	switch t.Kind() {
	case ctype.Int, ctype.Bool, ctype.Float:
		out["size"] = t.Size()
		if t.Kind() == ctype.Int {
			out["signed"] = t.Signed()
		}
	case ctype.Pointer:
		out["word_size"] = t.WordSize()
	case ctype.Array:
		out["complete"] = t.Complete()
		if t.Complete() {
			out["length"] = t.Length()
		}
	case ctype.Struct, ctype.Union:
		out["size"] = t.Size()
		out["complete"] = t.StructComplete()
		out["member_count"] = len(t.Members())
	}
	return out
}
