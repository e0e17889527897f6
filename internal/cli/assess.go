package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mindlink/mindlink/internal/assessment"
)

type AssessCmd struct {
	Instrument string `help:"Instrument to run (gad7 or phq9)." enum:"gad7,phq9," default:""`
}

func (c *AssessCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id := c.Instrument
	if id == "" {
		var opts []huh.Option[string]
		for _, def := range assessment.All() {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s — %s", def.Title, def.Description), def.ID))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Choose an assessment").
					Options(opts...).
					Value(&id),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	session := assessment.NewSession()
	if err := session.Start(id); err != nil {
		return err
	}

	def := session.Definition()
	fmt.Printf("\n%s\n", def.Title)
	fmt.Println("Over the last 2 weeks, how often have you been bothered by the following?")

	var answerOpts []huh.Option[int]
	for _, o := range assessment.Options() {
		answerOpts = append(answerOpts, huh.NewOption(o.Label, o.Score))
	}

	for session.Step() == assessment.StepQuestions {
		score := 0
		title := fmt.Sprintf("%d/%d · %s", session.CurrentIndex()+1, len(def.Questions), session.Question())
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title(title).
					Options(answerOpts...).
					Value(&score),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if err := session.Answer(score); err != nil {
			return err
		}
		session.Advance()
	}

	total, band, highRisk := session.Result()
	fmt.Printf("\nScore: %d of %d\n", total, 3*len(def.Questions))
	fmt.Printf("Result: %s\n", band.Label)
	if highRisk {
		fmt.Println("\nYour score suggests you may be going through a difficult time.")
		fmt.Println("Consider reaching out to a counselor or someone you trust.")
	}
	fmt.Println("\nThis screening is not a diagnosis.")
	return nil
}
