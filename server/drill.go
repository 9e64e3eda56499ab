// Terminal practice trainer: deal hands, grade answers, track a session.
package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"rangelab/server/scenario"
)

func runDrill(hands int) {
	if hands <= 0 {
		hands = 20
	}
	gen := scenario.NewGenerator(0)
	skill := NewSkill(1500, 32)
	stats := NewSessionStats()

	pterm.DefaultHeader.Println("rangelab preflop drill")
	pterm.Info.Printfln("%d hands. Pick the standard open action for your hand and position.", hands)

	for i := 1; i <= hands; i++ {
		q := gen.Next()
		pterm.Println()
		pterm.Printfln("Hand %d/%d: %s %s  (%s) from %s",
			i, hands, q.Cards[0], q.Cards[1], q.Label, q.Position)

		answer, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{"fold", "call", "raise"}).
			Show("Your action")
		if err != nil {
			pterm.Warning.Println("input closed, ending session early")
			break
		}
		chosen, err := scenario.ParseChoice(answer)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}

		res := scenario.Grade(q, chosen)
		stats.Record(res)
		delta := skill.Update(res.Tier, res.IsCorrect)
		if res.IsCorrect {
			pterm.Success.Printfln("Correct. %s  (%+.1f)", res.Explanation, delta)
		} else {
			pterm.Error.Printfln("Wrong. %s  (%+.1f)", res.Explanation, delta)
		}
	}

	printSummary(stats, skill)
}

func printSummary(stats *SessionStats, skill Skill) {
	pterm.Println()
	pterm.DefaultSection.Println("Session summary")

	rows := pterm.TableData{{"Tier", "Answered", "Correct", "Accuracy"}}
	for _, tier := range stats.Tiers() {
		tc := stats.ByTier[tier]
		rows = append(rows, []string{
			tier,
			fmt.Sprintf("%d", tc.Total),
			fmt.Sprintf("%d", tc.Correct),
			fmt.Sprintf("%.0f%%", 100*float64(tc.Correct)/float64(tc.Total)),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	lo, hi := WilsonCI95(stats.Correct, 0, stats.Total)
	pterm.Info.Printfln("Overall: %d/%d (%.0f%%), 95%% CI [%.0f%%, %.0f%%]",
		stats.Correct, stats.Total, 100*stats.Accuracy(), 100*lo, 100*hi)
	pterm.Info.Printfln("Best streak: %d", stats.BestStreak)
	pterm.Info.Printfln("Skill rating: %.0f", skill.Rating)
}
