package editform

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/sergeknystautas/commitedit/internal/commit"
)

// EditOnce runs a one-shot edit of the commit message using a huh form
// and returns the updated record. Unlike Run there is no live change
// feed; the caller sees the result once the form is submitted.
func EditOnce(c commit.Commit) (commit.Commit, error) {
	msg := c.Message

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(c.Node).
				Description(fmt.Sprintf("Author: %s\nDate:   %s", c.DisplayAuthor(), c.DisplayDate())),
			huh.NewText().
				Title("Message").
				Placeholder("Commit message").
				Value(&msg),
		),
	)

	if err := form.Run(); err != nil {
		return c, err
	}

	return c.WithMessage(msg), nil
}
