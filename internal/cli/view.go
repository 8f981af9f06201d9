package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/hyperpath/query"
)

// resultView is the JSON shape of one query result, shared by solve, batch
// and serve. Unreachable nodes are listed separately since JSON has no +Inf.
type resultView struct {
	ID          string             `json:"id"`
	Destination string             `json:"destination"`
	Pruned      bool               `json:"pruned"`
	Costs       map[string]float64 `json:"costs"`
	Unreachable []string           `json:"unreachable,omitempty"`
	Strategy    []choiceView       `json:"strategy"`
	Flows       map[string]float64 `json:"flows,omitempty"`
	Demand      float64            `json:"demand"`
	Arrived     float64            `json:"arrived"`
	ElapsedMS   float64            `json:"elapsed_ms"`
}

type choiceView struct {
	Link  string  `json:"link"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Share float64 `json:"share"`
}

func newResultView(res *query.Result) resultView {
	s := res.Strategy
	net := s.Network()
	v := resultView{
		ID:          res.ID.String(),
		Destination: res.Destination,
		Pruned:      s.Pruned(),
		Costs:       make(map[string]float64, net.NodeCount()),
		Strategy:    make([]choiceView, 0),
		Demand:      res.Flows.TotalDemand(),
		Arrived:     res.Flows.Arrived(),
		ElapsedMS:   float64(res.Elapsed.Microseconds()) / 1000,
	}
	for id, c := range s.Costs() {
		if math.IsInf(c, 1) {
			v.Unreachable = append(v.Unreachable, id)
			continue
		}
		v.Costs[id] = c
	}
	sort.Strings(v.Unreachable)
	for _, id := range s.OptimalLinks() {
		l, _ := net.Link(id)
		v.Strategy = append(v.Strategy, choiceView{Link: id, From: l.From, To: l.To, Share: s.Share(id)})
	}
	for id, vol := range res.Flows.ByLink() {
		if vol == 0 {
			continue
		}
		if v.Flows == nil {
			v.Flows = make(map[string]float64)
		}
		v.Flows[id] = vol
	}

	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// printResult renders a result for a terminal: costs in label order, the
// strategy grouped by tail node, then non-zero link volumes.
func printResult(w io.Writer, res *query.Result) {
	s := res.Strategy
	net := s.Network()

	fmt.Fprintln(w, StyleTitle.Render("Hyperpath to "+res.Destination))
	printDetail(w, "query %s · %s", res.ID, res.Elapsed.Round(time.Microsecond))
	fmt.Fprintln(w)

	fmt.Fprintln(w, StyleTitle.Render("Expected cost"))
	for _, id := range s.Order() {
		c, _ := s.Cost(id)
		printKeyValue(w, id, formatCost(c))
	}
	if n := net.NodeCount() - len(s.Order()); n > 0 {
		printWarning(w, "%d node(s) unlabelled (unreachable or pruned)", n)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, StyleTitle.Render("Strategy"))
	for _, id := range s.Order() {
		choices, _ := s.Choices(id)
		for _, ch := range choices {
			printChoice(w, id, ch.To, ch.LinkID, ch.Share)
		}
	}

	if res.Flows.TotalDemand() == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Flows"))
	for _, l := range net.Links() {
		if vol := res.Flows.Volume(l.ID); vol != 0 {
			printKeyValue(w, l.ID, StyleNumber.Render(fmt.Sprintf("%.3f", vol)))
		}
	}
	printSuccess(w, "%s of %s arrived", formatCost(res.Flows.Arrived()), formatCost(res.Flows.TotalDemand()))
}
