package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
)

const stopOption = "Stop game"

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run() error {
	eng, err := engine.NewSeeded()
	if err != nil {
		return err
	}

	_ = pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Odd ", pterm.FgLightMagenta.ToStyle()),
		putils.LettersFromStringWithStyle("One Out", pterm.FgDarkGray.ToStyle()),
	).Render()
	pterm.Info.Println("Pick the swatch that differs from the other three. One miss ends the game.")

	if ok, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Start?").WithDefaultValue(true).Show(); !ok {
		return nil
	}

	session := engine.NewEmptySession()
	cmd := engine.Command{Type: engine.CmdStart}
	for {
		_, next, err := eng.Apply(session, cmd)
		if err != nil {
			return fmt.Errorf("apply %s: %w", cmd.Type, err)
		}
		session = next

		if session.Status == engine.StatusOver {
			printGameOver(session)
			again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Restart game?").WithDefaultValue(true).Show()
			if !again {
				return nil
			}
			cmd = engine.Command{Type: engine.CmdRestart}
			continue
		}

		printStats(session)
		labels, byLabel := swatchOptions(*session.Round)
		selected, err := pterm.DefaultInteractiveSelect.
			WithDefaultText("Select the odd one out").
			WithOptions(append(labels, stopOption)).
			Show()
		if err != nil {
			return err
		}
		// Zero At: the engine stamps the choice on its own clock.
		if selected == stopOption {
			cmd = engine.Command{Type: engine.CmdStop}
			continue
		}
		c, ok := byLabel[selected]
		if !ok {
			return errors.New("unknown selection")
		}
		cmd = engine.Command{Type: engine.CmdChoose, Color: c}
	}
}
