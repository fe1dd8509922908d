package interpreter

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/sirupsen/logrus"

	"robotsim/internal/robot"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Place  *Place  `parser:"  @@ ';'"`
	Eval   *Eval   `parser:"| @@ ';'"`
	Report *Report `parser:"| @@ ';'"`
	Repeat *Repeat `parser:"| @@"`
}

type Place struct {
	Name string `parser:"'place' @Ident"`
	X    int    `parser:"@Int"`
	Y    int    `parser:"@Int"`
	Dir  string `parser:"@Ident"`
}

type Eval struct {
	Name         string `parser:"'eval' @Ident"`
	Instructions string `parser:"@(String | Ident)"`
}

type Report struct {
	Name string `parser:"'report' @Ident"`
}

type Repeat struct {
	Count int      `parser:"'repeat' @Int"`
	Body  *Program `parser:"'{' @@ '}'"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[;{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse builds a program from script source. name is used in positions.
func Parse(name, data string) (*Program, error) {
	return parser.ParseString(name, data)
}

func (p *Program) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return fmt.Errorf("%s: %w", stmt.Pos, err)
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	log := ctx.logger().WithField("pos", s.Pos.String())
	switch {
	case s.Place != nil:
		dir, err := robot.ParseBearing(s.Place.Dir)
		if err != nil {
			return err
		}
		r := ctx.Fleet.GetOrCreate(s.Place.Name)
		if err := r.Place(s.Place.X, s.Place.Y, dir); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"robot": s.Place.Name, "state": r.String()}).Debug("place")
	case s.Eval != nil:
		r, err := ctx.Fleet.Get(s.Eval.Name)
		if err != nil {
			return err
		}
		if err := r.Evaluate(s.Eval.Instructions); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"robot":        s.Eval.Name,
			"instructions": s.Eval.Instructions,
			"state":        r.String(),
		}).Debug("eval")
	case s.Report != nil:
		r, err := ctx.Fleet.Get(s.Report.Name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(ctx.out(), "%s %s\n", s.Report.Name, r); err != nil {
			return err
		}
	case s.Repeat != nil:
		if s.Repeat.Count < 0 {
			return fmt.Errorf("negative repeat count %d", s.Repeat.Count)
		}
		for i := 0; i < s.Repeat.Count; i++ {
			if err := s.Repeat.Body.Exec(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
