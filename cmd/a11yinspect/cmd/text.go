package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/go-drift/accessbridge/pkg/textbound"
)

type textReport struct {
	Boundary string `json:"boundary" yaml:"boundary"`
	Anchor   string `json:"anchor" yaml:"anchor"`
	Offset   int    `json:"offset" yaml:"offset"`
	Text     string `json:"text" yaml:"text"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
}

func newTextCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "text <string>",
		Short: "Answer a text boundary query",
		Long: `Segment a string and print the unit before, at or after --offset, the
way the bridge answers text-at-offset queries when no listener does.`,
		Args: cobra.ExactArgs(1),
		RunE: runText,
	}
	c.Flags().String("unit", "word", "Unit: char, word, sentence or line")
	c.Flags().String("edge", "start", "Edge the unit is measured from: start or end")
	c.Flags().String("anchor", "at", "Anchor: before, at or after")
	c.Flags().Int("offset", 0, "Character offset")
	return c
}

// parseName returns the value among values whose String() is name.
func parseName[T fmt.Stringer](kind, name string, values ...T) (T, error) {
	for _, v := range values {
		if v.String() == name {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, name)
}

func runText(cmd *cobra.Command, args []string) error {
	text := args[0]
	if !utf8.ValidString(text) {
		return fmt.Errorf("text is not valid UTF-8")
	}
	flag := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	unit, err := parseName("unit", flag("unit"), textbound.Char, textbound.Word, textbound.Sentence, textbound.Line)
	if err != nil {
		return err
	}
	edge, err := parseName("edge", flag("edge"), textbound.Start, textbound.End)
	if err != nil {
		return err
	}
	anchor, err := parseName("anchor", flag("anchor"), textbound.Before, textbound.At, textbound.After)
	if err != nil {
		return err
	}
	offset, _ := cmd.Flags().GetInt("offset")

	b := textbound.Boundary{Unit: unit, Edge: edge}
	got, start, end := textbound.Query(text, offset, b, anchor)
	return render(cmd, textReport{
		Boundary: fmt.Sprintf("%s-%s", unit, edge),
		Anchor:   anchor.String(),
		Offset:   offset,
		Text:     got,
		Start:    start,
		End:      end,
	})
}
