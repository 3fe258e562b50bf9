// Command bitaddr prints how bit indices, or hashed keys, land in an array of
// fixed-width words.
//
//	bitaddr -width 64 0 63 64 130
//	bitaddr -table digest -width 64 -keys -hash xxh3 alice bob
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/EricLagergren/bitaddr"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

type config struct {
	table    string
	width    uint
	keys     bool
	hash     string
	logWords uint
	args     []string
}

func parseFlags(args []string, errOut io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("bitaddr", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.table, "table", "native", "shift table: native or digest")
	fs.UintVar(&c.width, "width", bitaddr.WordBits, "word width in bits")
	fs.BoolVar(&c.keys, "keys", false, "treat arguments as keys to hash")
	fs.StringVar(&c.hash, "hash", "sip", "digest for -keys: sip or xxh3")
	fs.UintVar(&c.logWords, "logwords", 10, "log2 of the array size in words for -keys")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	c.args = fs.Args()
	return c, nil
}

func pickTable(name string) (bitaddr.Table, error) {
	switch name {
	case "native":
		return bitaddr.NativeWords, nil
	case "digest":
		return bitaddr.DigestWords, nil
	}
	return bitaddr.Table{}, fmt.Errorf("unknown table %q", name)
}

func pickDigest(name string) (bitaddr.Digest, error) {
	switch name {
	case "sip":
		return bitaddr.DefaultDigest, nil
	case "xxh3":
		return bitaddr.XXH3(0), nil
	}
	return nil, fmt.Errorf("unknown hash %q", name)
}

func run(args []string, out, errOut io.Writer) error {
	c, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}
	tbl, err := pickTable(c.table)
	if err != nil {
		return err
	}
	// Derive before touching any input.
	a, err := tbl.Derive(c.width)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if c.keys {
		d, err := pickDigest(c.hash)
		if err != nil {
			return err
		}
		t.Headers("key", "digest", "word", "bit")
		for _, k := range c.args {
			sum := d.String(k)
			addr := a.Within(sum, c.logWords)
			t.Row(k, fmt.Sprintf("%#016x", sum), fmt.Sprint(addr.Word), fmt.Sprint(addr.Bit))
		}
	} else {
		t.Headers("index", "word", "bit")
		for _, s := range c.args {
			i, err := strconv.ParseUint(s, 0, 64)
			if err != nil {
				return fmt.Errorf("bad bit index %q: %w", s, err)
			}
			addr := a.Resolve(i)
			t.Row(s, fmt.Sprint(addr.Word), fmt.Sprint(addr.Bit))
		}
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s %s span=%d", tbl.Name(), a, a.Span())))
	fmt.Fprintln(out, t.String())
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalln(err)
	}
}
