package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/solvability/card"
	"github.com/katalvlaran/solvability/detector"
)

// report is the -json output shape.
type report struct {
	Source           string      `json:"source"`
	VariantID        string      `json:"variant"`
	LikelyInsolvable bool        `json:"likely_insolvable"`
	Nodes            int         `json:"nodes"`
	Edges            int         `json:"edges"`
	Rules            []ruleEntry `json:"matched_rules"`
}

type ruleEntry struct {
	RuleID   string   `json:"rule_id"`
	Reason   string   `json:"reason"`
	Score    int      `json:"score"`
	Evidence []string `json:"evidence"`
}

func writeJSON(w io.Writer, source string, ev detector.Evaluation) error {
	r := report{
		Source:           source,
		VariantID:        ev.VariantID,
		LikelyInsolvable: ev.LikelyInsolvable,
		Nodes:            ev.Graph.NodeCount,
		Edges:            ev.Graph.EdgeCount,
		Rules:            make([]ruleEntry, 0, len(ev.MatchedRules)),
	}
	for _, m := range ev.MatchedRules {
		e := ruleEntry{RuleID: m.RuleID, Reason: m.Reason, Score: m.Score, Evidence: make([]string, len(m.Evidence))}
		for i, ref := range m.Evidence {
			e.Evidence[i] = string(ref)
		}
		r.Rules = append(r.Rules, e)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func writeReport(w io.Writer, source string, pos card.Position, key string, ev detector.Evaluation) error {
	layout, err := layoutTable(pos.Group(key))
	if err != nil {
		return err
	}
	rules, err := rulesTable(ev)
	if err != nil {
		return err
	}

	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	_, err = fmt.Fprintln(w, box.WithTitle(pterm.LightYellow("|"+strings.ToUpper(ev.VariantID)+"|")).WithTitleTopCenter().Sprint(
		pterm.Sprintfln("%s", source)+layout,
	))
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, rules); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, verdict(ev))

	return err
}

// layoutTable draws the tableau with one table column per pile column.
func layoutTable(cols []card.Column) (string, error) {
	if len(cols) == 0 {
		return "(empty tableau)", nil
	}
	height := 0
	for _, c := range cols {
		if len(c) > height {
			height = len(c)
		}
	}
	data := make(pterm.TableData, 0, height+1)
	header := make([]string, len(cols))
	for i := range cols {
		header[i] = strconv.Itoa(i)
	}
	data = append(data, header)
	for r := 0; r < height; r++ {
		row := make([]string, len(cols))
		for c, col := range cols {
			if r < len(col) {
				row[c] = col[r].String()
			}
		}
		data = append(data, row)
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func rulesTable(ev detector.Evaluation) (string, error) {
	if len(ev.MatchedRules) == 0 {
		return pterm.Sprintfln("no rule matched (%d nodes, %d edges)", ev.Graph.NodeCount, ev.Graph.EdgeCount), nil
	}
	data := pterm.TableData{{"rule", "score", "reason", "evidence"}}
	for _, m := range ev.MatchedRules {
		refs := make([]string, len(m.Evidence))
		for i, ref := range m.Evidence {
			refs[i] = string(ref)
		}
		data = append(data, []string{m.RuleID, strconv.Itoa(m.Score), m.Reason, strings.Join(refs, ", ")})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func verdict(ev detector.Evaluation) string {
	if ev.LikelyInsolvable {
		return pterm.LightRed("likely unsolvable")
	}

	return pterm.LightGreen("not proven unsolvable")
}
